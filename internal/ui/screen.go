// Package ui provides terminal rendering and input using tcell.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termwordle/internal/game"
)

// Screen wraps tcell.Screen with a simplified interface.
// It also translates terminal events into game events.
type Screen struct {
	screen tcell.Screen
	closed bool
}

// NewScreen creates and initializes a new terminal screen. The terminal is
// in raw full-screen mode with a hidden cursor until Close is called.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(styleBase)
	s.HideCursor()
	s.EnableMouse()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state. It is safe to call
// more than once.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// PollEvent waits for the next event the game cares about. It returns nil
// once the screen has been closed.
func (s *Screen) PollEvent() game.Event {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if gev := translate(ev); gev != nil {
			return gev
		}
	}
}

// translate maps a tcell event to a game event, or nil for events the game
// does not handle.
func translate(ev tcell.Event) game.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return game.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		return game.PointerEvent{}
	default:
		return nil
	}
}

func translateKey(ev *tcell.EventKey) game.KeyEvent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return game.KeyEvent{Key: game.KeyInterrupt}
	case tcell.KeyEnter:
		return game.KeyEvent{Key: game.KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.KeyEvent{Key: game.KeyBackspace}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return game.KeyEvent{Key: game.KeyOther}
		}
		return game.KeyEvent{Key: game.KeyRune, Rune: ev.Rune()}
	default:
		return game.KeyEvent{Key: game.KeyOther}
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
