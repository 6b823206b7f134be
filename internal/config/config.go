// Package config loads the demo application's TOML configuration.
package config

import (
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the demo application configuration.
type Config struct {
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	List     List         `toml:"list"`
	Sortable SortableOpts `toml:"sortable"`
}

// List describes the list the demo shows.
type List struct {
	Title string `toml:"title"`
	Items []Item `toml:"items"`
}

// Item is one list entry.
type Item struct {
	ID      string   `toml:"id"`
	Label   string   `toml:"label"`
	Classes []string `toml:"classes"`
}

// SortableOpts configures the widget.
type SortableOpts struct {
	Items  string `toml:"items"`
	Handle string `toml:"handle"`

	// Enabled is a pointer so an absent key can default to true.
	Enabled *bool `toml:"enabled"`

	ScrollMargin int `toml:"scroll_margin"`
	ScrollStep   int `toml:"scroll_step"`
}

// IsEnabled resolves the optional enabled flag; absent means enabled.
func (s SortableOpts) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		List: List{
			Title: "sortlist",
			Items: []Item{
				{ID: "a", Label: "Alpha"},
				{ID: "b", Label: "Bravo"},
				{ID: "c", Label: "Charlie"},
				{ID: "d", Label: "Delta"},
				{ID: "e", Label: "Echo"},
			},
		},
		Sortable: SortableOpts{
			Items:        "item",
			ScrollMargin: 1,
			ScrollStep:   1,
		},
	}
}

// ParseError describes a configuration file that could not be loaded.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and parses a TOML configuration file. Fields missing from
// the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return parse(path, data)
}

// LoadFS is Load over an fs.FS, for tests.
func LoadFS(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return parse(path, data)
}

// parse decodes into a zero Config and fills blanks from Default
// afterwards. Decoding into a pre-filled Config would double the item
// list: go-toml appends array-of-table entries to a non-empty slice.
func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	def := Default()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.List.Title == "" {
		cfg.List.Title = def.List.Title
	}
	if len(cfg.List.Items) == 0 {
		cfg.List.Items = def.List.Items
	}
	if cfg.Sortable.Items == "" {
		cfg.Sortable.Items = def.Sortable.Items
	}
	if cfg.Sortable.ScrollMargin == 0 {
		cfg.Sortable.ScrollMargin = def.Sortable.ScrollMargin
	}
	if cfg.Sortable.ScrollStep == 0 {
		cfg.Sortable.ScrollStep = def.Sortable.ScrollStep
	}
	return &cfg, nil
}
