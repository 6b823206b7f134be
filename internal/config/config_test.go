package config

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"sortlist.toml": &fstest.MapFile{Data: []byte(`
log_level = "debug"

[list]
title = "Groceries"

[[list.items]]
id = "milk"
label = "Milk"

[[list.items]]
id = "eggs"
label = "Eggs"
classes = ["locked"]

[sortable]
handle = ".grip"
scroll_margin = 2
`)},
	}

	cfg, err := LoadFS(fsys, "sortlist.toml")
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.List.Title != "Groceries" {
		t.Errorf("Title = %q, want Groceries", cfg.List.Title)
	}
	if len(cfg.List.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(cfg.List.Items))
	}
	if cfg.List.Items[1].ID != "eggs" || len(cfg.List.Items[1].Classes) != 1 {
		t.Errorf("unexpected second item %+v", cfg.List.Items[1])
	}
	if cfg.Sortable.Handle != ".grip" {
		t.Errorf("Handle = %q, want .grip", cfg.Sortable.Handle)
	}
	if cfg.Sortable.ScrollMargin != 2 {
		t.Errorf("ScrollMargin = %d, want 2", cfg.Sortable.ScrollMargin)
	}
}

func TestLoadFSDefaultsFillBlanks(t *testing.T) {
	fsys := fstest.MapFS{
		"sortlist.toml": &fstest.MapFile{Data: []byte(`log_level = "warn"`)},
	}

	cfg, err := LoadFS(fsys, "sortlist.toml")
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}

	def := Default()
	if cfg.List.Title != def.List.Title {
		t.Errorf("Title = %q, want default %q", cfg.List.Title, def.List.Title)
	}
	if len(cfg.List.Items) != len(def.List.Items) {
		t.Errorf("len(Items) = %d, want default %d", len(cfg.List.Items), len(def.List.Items))
	}
	if cfg.Sortable.Items != def.Sortable.Items {
		t.Errorf("Sortable.Items = %q, want default %q", cfg.Sortable.Items, def.Sortable.Items)
	}
	if cfg.Sortable.ScrollStep != def.Sortable.ScrollStep {
		t.Errorf("ScrollStep = %d, want default %d", cfg.Sortable.ScrollStep, def.Sortable.ScrollStep)
	}
}

func TestEnabledDefaultsTrue(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"absent", `[sortable]`, true},
		{"explicit true", "[sortable]\nenabled = true", true},
		{"explicit false", "[sortable]\nenabled = false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"c.toml": &fstest.MapFile{Data: []byte(tt.data)},
			}
			cfg, err := LoadFS(fsys, "c.toml")
			if err != nil {
				t.Fatalf("LoadFS failed: %v", err)
			}
			if got := cfg.Sortable.IsEnabled(); got != tt.want {
				t.Errorf("IsEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFSMissingFile(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, "absent.toml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not a ParseError", err)
	}
	if perr.Path != "absent.toml" {
		t.Errorf("ParseError.Path = %q, want absent.toml", perr.Path)
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError should wrap the underlying error")
	}
}

func TestLoadFSMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.toml": &fstest.MapFile{Data: []byte(`log_level = `)},
	}

	_, err := LoadFS(fsys, "bad.toml")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not a ParseError", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.List.Items) == 0 {
		t.Error("default config should provide items")
	}
	if !cfg.Sortable.IsEnabled() {
		t.Error("default config should be enabled")
	}
	if cfg.Sortable.Items == "" {
		t.Error("default config should set an item selector")
	}
}
