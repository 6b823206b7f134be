// Package render provides the terminal surface for the demo: a tcell
// screen wrapper plus a painter for the element tree.
package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps a tcell screen with the lifecycle the demo needs.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewScreen creates a screen backed by the real terminal.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: screen}, nil
}

// NewSimulationScreen creates a screen backed by tcell's simulator, for
// tests.
func NewSimulationScreen() *Screen {
	return &Screen{screen: tcell.NewSimulationScreen("UTF-8")}
}

// Init initializes the screen and enables mouse and focus reporting.
// Focus reporting is how a drag learns the pointer left the window.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	s.screen.EnableFocus()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fini()
}

// Size returns the screen dimensions.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Size()
}

// Events feeds terminal events into ch until quit is closed.
func (s *Screen) Events(ch chan tcell.Event, quit chan struct{}) {
	go s.screen.ChannelEvents(ch, quit)
}

// Screen exposes the underlying tcell screen to the painter.
func (s *Screen) Screen() tcell.Screen {
	return s.screen
}

// Show flushes pending drawing to the terminal.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Show()
}
