package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termwordle/internal/game"
)

const (
	// MinWidth and MinHeight are the smallest terminal in which the keyboard
	// diagram is drawn.
	MinWidth  = 47
	MinHeight = 13
	// StatusMinHeight is the smallest terminal height that has a status line.
	StatusMinHeight = 14

	gridWidth      = 4*game.WordLength + 1
	gridHeight     = 2*game.MaxAttempts + 1
	keyboardWidth  = 41
	keyboardHeight = 7
)

// Flash configures the animation shown when a guess is rejected.
type Flash struct {
	Frames int
	Delay  time.Duration
}

// DefaultFlash blinks the rejected guess twice.
var DefaultFlash = Flash{Frames: 4, Delay: 150 * time.Millisecond}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	flash  Flash
	sleep  func(time.Duration)
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, flash Flash) *Renderer {
	return &Renderer{
		screen: screen,
		flash:  flash,
		sleep:  time.Sleep,
	}
}

// Draw renders the grid, the keyboard and the status line.
func (r *Renderer) Draw(round *game.Round, prompt game.Prompt) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.drawGrid(w, round)
	if y, ok := keyboardRow(w, h); ok {
		r.drawKeyboard((w-keyboardWidth)/2, y, round.Keyboard())
	}
	if y, ok := statusRow(h); ok {
		r.drawStatus(w, y, prompt)
	}

	r.screen.Show()
}

// FlashInvalid blinks the current guess. It blocks for Frames*Delay.
func (r *Renderer) FlashInvalid(round *game.Round) {
	w, _ := r.screen.Size()
	x, y := gridOrigin(w)
	row := round.Attempts()

	for i := 0; i < r.flash.Frames; i++ {
		style := styleFlashOn
		if i%2 == 1 {
			style = styleFlashOff
		}
		for col, c := range round.Current() {
			r.drawCell(x, y, row, col, c, style)
		}
		r.screen.Show()
		r.sleep(r.flash.Delay)
	}
}

// Resize clears the terminal and redraws it from scratch.
func (r *Renderer) Resize() {
	r.screen.Clear()
	r.screen.Sync()
}

// gridOrigin returns the top-left corner of the guess grid.
func gridOrigin(w int) (int, int) {
	return max((w-gridWidth)/2, 0), 0
}

// keyboardRow returns the top row of the keyboard diagram, or false when the
// terminal is too small to show it without overlapping the grid or status.
func keyboardRow(w, h int) (int, bool) {
	if w < MinWidth || h < MinHeight {
		return 0, false
	}
	y := max(gridHeight, h-12)
	bottom := h
	if sy, ok := statusRow(h); ok {
		bottom = sy
	}
	if y+keyboardHeight > bottom {
		return 0, false
	}
	return y, true
}

// statusRow returns the row of the status line, or false when there is no
// room for one.
func statusRow(h int) (int, bool) {
	switch {
	case h < StatusMinHeight:
		return 0, false
	case h == StatusMinHeight:
		return h - 1, true
	default:
		return h - 2, true
	}
}

func (r *Renderer) drawGrid(w int, round *game.Round) {
	x, y := gridOrigin(w)

	r.drawText(x, y, gridLine('┌', '┬', '┐'), styleBase)
	for row := 0; row < game.MaxAttempts; row++ {
		r.drawText(x, y+2*row+1, strings.Repeat("│   ", game.WordLength)+"│", styleBase)
		if row < game.MaxAttempts-1 {
			r.drawText(x, y+2*row+2, gridLine('├', '┼', '┤'), styleBase)
		}
	}
	r.drawText(x, y+gridHeight-1, gridLine('└', '┴', '┘'), styleBase)

	for row, g := range round.Guesses() {
		for col, c := range g.Word {
			r.drawCell(x, y, row, col, c, markStyle(g.Marks[col]))
		}
	}
	if round.State() == game.StatePlaying {
		for col, c := range round.Current() {
			r.drawCell(x, y, round.Attempts(), col, c, styleBase)
		}
	}
}

// drawCell draws one letter of the grid.
func (r *Renderer) drawCell(x, y, row, col int, c rune, style tcell.Style) {
	r.screen.SetContent(x+2+4*col, y+2*row+1, unicode.ToUpper(c), style)
}

func gridLine(left, mid, right rune) string {
	var b strings.Builder
	b.WriteRune(left)
	for i := 0; i < game.WordLength; i++ {
		if i > 0 {
			b.WriteRune(mid)
		}
		b.WriteString("───")
	}
	b.WriteRune(right)
	return b.String()
}

var keyboardFrame = []string{
	"┌───┬───┬───┬───┬───┬───┬───┬───┬───┬───┐",
	"│" + strings.Repeat("   │", 10),
	"└─┬─┴─┬─┴─┬─┴─┬─┴─┬─┴─┬─┴─┬─┴─┬─┴─┬─┴─┬─┘",
	"  │" + strings.Repeat("   │", 9),
	"  └─┬─┴─┬─┴─┬─┴─┬─┴─┬─┴─┬─┴─┬─┴─┬─┴───┘",
	"    │" + strings.Repeat("   │", 7),
	"    └───┴───┴───┴───┴───┴───┴───┘",
}

func (r *Renderer) drawKeyboard(x, y int, kb *game.Keyboard) {
	for i, line := range keyboardFrame {
		r.drawText(x, y+i, line, styleBase)
	}
	for row, keys := range kb.Rows() {
		for i, k := range keys {
			r.screen.SetContent(x+2+2*row+4*i, y+1+2*row, unicode.ToUpper(k.Letter), keyStyle(k))
		}
	}
}

// segment is a run of status text in one style.
type segment struct {
	text  string
	style tcell.Style
}

// statusSegments returns the status line for prompt. Optional segments are
// dropped when the line would not fit in width w.
func statusSegments(prompt game.Prompt, w int) []segment {
	switch prompt.Kind {
	case game.PromptInvalid:
		return []segment{{"Word is not in the word list!", styleBase}}
	case game.PromptWon, game.PromptLost:
		verb, wordStyle := "won", styleWinWord
		if prompt.Kind == game.PromptLost {
			verb, wordStyle = "lost", styleLossWord
		}
		segs := []segment{
			{"You " + verb + "! The word was ", styleBase},
			{strings.ToUpper(prompt.Secret), wordStyle},
			{".", styleBase},
		}
		stats := segment{fmt.Sprintf(" Won %d of %d.", prompt.Stats.Won, prompt.Stats.Played), styleBase}
		again := segment{" Start again? y/n", styleBase}
		if segmentsLen(segs)+len(stats.text)+len(again.text) <= w {
			segs = append(segs, stats)
		}
		return append(segs, again)
	default:
		return []segment{{"Type in a word and press Enter! CTRL-C to quit.", styleBase}}
	}
}

func segmentsLen(segs []segment) int {
	n := 0
	for _, s := range segs {
		n += len([]rune(s.text))
	}
	return n
}

func (r *Renderer) drawStatus(w, y int, prompt game.Prompt) {
	segs := statusSegments(prompt, w)
	x := max(w/2-segmentsLen(segs)/2, 0)
	for _, s := range segs {
		x = r.drawText(x, y, s.text, s.style)
	}
}

// drawText draws s starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}
