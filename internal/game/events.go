package game

import "errors"

// ErrInputClosed is returned when the input source stops producing events.
var ErrInputClosed = errors.New("input closed")

// Event is an input event consumed by the session loop.
type Event interface {
	isEvent()
}

// Key identifies the kind of key pressed.
type Key int

const (
	// KeyOther is any key the game does not react to.
	KeyOther Key = iota
	// KeyRune is a printable character; see KeyEvent.Rune.
	KeyRune
	KeyEnter
	KeyBackspace
	// KeyInterrupt ends the session immediately (Ctrl-C, Esc).
	KeyInterrupt
)

// KeyEvent is a key press.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// ResizeEvent reports new terminal dimensions.
type ResizeEvent struct {
	Width, Height int
}

// PointerEvent is a mouse event. The game ignores it.
type PointerEvent struct{}

func (KeyEvent) isEvent()     {}
func (ResizeEvent) isEvent()  {}
func (PointerEvent) isEvent() {}

// Input is a blocking source of events. PollEvent returns nil once the
// source is closed.
type Input interface {
	PollEvent() Event
}

// PromptKind selects the status line shown under the grid.
type PromptKind int

const (
	PromptTyping PromptKind = iota
	PromptInvalid
	PromptWon
	PromptLost
)

// Prompt is what the status line should say.
type Prompt struct {
	Kind   PromptKind
	Secret string // set for PromptWon and PromptLost
	Stats  Stats
}

// Renderer draws rounds. Implementations own every terminal operation.
type Renderer interface {
	// Draw renders the grid, keyboard and status line.
	Draw(round *Round, prompt Prompt)
	// FlashInvalid blinks the current guess to show it was rejected.
	// It blocks until the animation is finished.
	FlashInvalid(round *Round)
	// Resize clears and resynchronises the display after a size change.
	Resize()
}
