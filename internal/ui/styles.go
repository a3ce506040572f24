package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termwordle/internal/game"
)

var (
	styleBase      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleCorrect   = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	styleMisplaced = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleUnmarked  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleFlashOn   = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
	styleFlashOff  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed)
	styleWinWord   = styleBase.Foreground(tcell.ColorGreen).Bold(true)
	styleLossWord  = styleBase.Foreground(tcell.ColorRed).Bold(true)
)

// markStyle returns the style for a letter with the given mark.
func markStyle(m game.Mark) tcell.Style {
	switch m {
	case game.MarkCorrect:
		return styleCorrect
	case game.MarkMisplaced:
		return styleMisplaced
	default:
		return styleBase
	}
}

// keyStyle returns the style for an on-screen keyboard key.
func keyStyle(k game.KeyboardKey) tcell.Style {
	if !k.Marked {
		return styleUnmarked
	}
	return markStyle(k.Mark)
}
