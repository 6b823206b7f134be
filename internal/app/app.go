// Package app wires the demo application: it builds the element tree
// from configuration, runs the terminal event loop, and feeds pointer
// events into the sortable widget.
package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/sortlist/internal/config"
	"github.com/dshills/sortlist/internal/element"
	"github.com/dshills/sortlist/internal/layout"
	"github.com/dshills/sortlist/internal/notify"
	"github.com/dshills/sortlist/internal/pointer"
	"github.com/dshills/sortlist/internal/render"
	"github.com/dshills/sortlist/internal/sortable"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// maxListWidth caps the demo list so it doesn't span huge terminals.
const maxListWidth = 48

// Options controls application startup.
type Options struct {
	// ConfigPath is an optional TOML configuration file. When set, the
	// file is watched and the list rebuilds on rewrite.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}

// Application is the demo program: one screen, one document, one
// sortable list.
type Application struct {
	mu sync.Mutex

	opts   Options
	cfg    *config.Config
	logger *Logger

	screen *render.Screen
	theme  render.Theme

	doc       *element.Document
	container *element.Element
	sorter    *sortable.Sortable

	translator *pointer.Translator
	watcher    *config.Watcher

	quit     chan struct{}
	quitOnce sync.Once
}

// New creates the application from options.
func New(opts Options) (*Application, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(level)

	app := &Application{
		opts:       opts,
		cfg:        cfg,
		logger:     NewLogger(logCfg),
		theme:      render.DefaultTheme(),
		translator: pointer.NewTranslator(),
		quit:       make(chan struct{}),
	}
	app.buildDocument(cfg)

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("watch config: %w", err)
		}
		app.watcher = w
	}

	return app, nil
}

// SetScreen attaches the terminal surface the application renders to.
func (app *Application) SetScreen(s *render.Screen) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.screen = s
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Shutdown requests the event loop to exit. Safe to call more than once
// and from other goroutines.
func (app *Application) Shutdown() {
	app.quitOnce.Do(func() { close(app.quit) })
}

// Run drives the event loop until quit. It returns ErrQuit on a normal
// user exit.
func (app *Application) Run() error {
	app.mu.Lock()
	screen := app.screen
	app.mu.Unlock()
	if screen == nil {
		return errors.New("no screen attached")
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	defer app.sorter.Destroy()
	if app.watcher != nil {
		defer app.watcher.Close()
	}

	w, h := screen.Size()
	app.resize(w, h)
	app.sorter.Init()
	app.paint()

	events := make(chan tcell.Event, 16)
	eventsDone := make(chan struct{})
	defer close(eventsDone)
	screen.Events(events, eventsDone)

	var reload <-chan struct{}
	if app.watcher != nil {
		reload = app.watcher.Changes()
	}

	for {
		select {
		case <-app.quit:
			return ErrQuit
		case <-reload:
			app.reloadConfig()
			app.paint()
		case ev := <-events:
			if err := app.handleEvent(ev); err != nil {
				return err
			}
			app.paint()
		}
	}
}

// handleEvent routes one terminal event.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		app.resize(w, h)
	case *tcell.EventKey:
		if isQuitKey(e) {
			return ErrQuit
		}
	case *tcell.EventMouse:
		for _, pev := range app.translator.Translate(e) {
			app.handlePointer(pev)
		}
	case *tcell.EventFocus:
		// Focus loss is the closest terminal analogue to the pointer
		// leaving the window; an active drag aborts.
		if !e.Focused {
			app.doc.Dispatch(pointer.Event{Position: pointer.Position{X: -1, Y: -1}, Action: pointer.ActionLeave})
		}
	}
	return nil
}

// handlePointer applies wheel scrolling to the container, then hands the
// event to the document so widget listeners see it after the scroll has
// taken effect.
func (app *Application) handlePointer(ev pointer.Event) {
	if ev.Action == pointer.ActionScroll && app.container.Rect().Contains(ev.Position) {
		delta := 1
		if ev.Button == pointer.ButtonWheelUp {
			delta = -1
		}
		layout.ScrollBy(app.container, delta)
	}
	app.doc.Dispatch(ev)
}

// buildDocument constructs the element tree from configuration and wires
// a sortable widget to it.
func (app *Application) buildDocument(cfg *config.Config) {
	root := element.New("screen")
	container := element.New("list")
	container.Label = cfg.List.Title
	for _, it := range cfg.List.Items {
		item := element.New("item")
		item.ID = it.ID
		item.Label = it.Label
		for _, class := range it.Classes {
			item.AddClass(class)
		}
		container.AppendChild(item)
	}
	root.AppendChild(container)

	app.doc = element.NewDocument(root)
	app.container = container
	app.sorter = sortable.New(app.doc, container, sortable.Config{
		Items:        cfg.Sortable.Items,
		Handle:       cfg.Sortable.Handle,
		Enabled:      cfg.Sortable.IsEnabled(),
		ScrollMargin: cfg.Sortable.ScrollMargin,
		ScrollStep:   cfg.Sortable.ScrollStep,
	})

	app.sorter.OnStart(func(item *element.Element) {
		app.logger.Debug("drag %s: %s", notify.EventStart, itemName(item))
	})
	app.sorter.OnEnd(func() {
		app.logger.Debug("drag %s", notify.EventEnd)
	})
	app.sorter.OnChanged(func(c sortable.Change) {
		app.logger.Info("drag %s: [%s] moved=%s before=%s",
			notify.EventChanged, itemNames(c.Items), itemName(c.Result.Item), itemName(c.Result.Before))
	})
}

// reloadConfig reloads the configuration file and rebuilds the list.
// A broken file is logged and the current list kept.
func (app *Application) reloadConfig() {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		app.logger.Warn("config reload failed: %v", err)
		return
	}

	app.logger.Info("config reloaded: %s", app.opts.ConfigPath)
	app.sorter.Destroy()
	app.cfg = cfg
	app.buildDocument(cfg)

	w, h := app.screen.Size()
	app.resize(w, h)
	app.sorter.Init()
}

// resize positions the root and container for the new screen size.
func (app *Application) resize(w, h int) {
	app.doc.Root().SetRect(element.Rect{X: 0, Y: 0, W: w, H: h})

	listW := w - 4
	if listW > maxListWidth {
		listW = maxListWidth
	}
	listH := app.container.ChildCount() + 2
	if listH > h-2 {
		listH = h - 2
	}
	if listW < 0 {
		listW = 0
	}
	if listH < 0 {
		listH = 0
	}
	app.container.SetRect(element.Rect{X: 2, Y: 1, W: listW, H: listH})
	layout.Apply(app.container)
}

// paint redraws the screen.
func (app *Application) paint() {
	render.Paint(app.screen.Screen(), app.container, app.theme)
	app.screen.Show()
}

// isQuitKey reports whether the key ends the program.
func isQuitKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return e.Rune() == 'q' || e.Rune() == 'Q'
	}
	return false
}

// itemName returns a loggable name for an item.
func itemName(e *element.Element) string {
	if e == nil {
		return "<end>"
	}
	if e.ID != "" {
		return e.ID
	}
	return e.Label
}

// itemNames joins the loggable names of items.
func itemNames(items []*element.Element) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = itemName(it)
	}
	return strings.Join(names, " ")
}
