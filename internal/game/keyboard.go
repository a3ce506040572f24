package game

import (
	"fmt"
	"strings"
)

// Layout is the QWERTY order in which keyboard letters are drawn.
const Layout = "qwertyuiopasdfghjklzxcvbnm"

// layoutRows splits Layout into the three keyboard rows.
var layoutRows = []string{Layout[:10], Layout[10:19], Layout[19:]}

// MergePolicy decides how a new mark for a letter combines with the old one.
type MergePolicy int

const (
	// LastWrite replaces the previous mark unconditionally. A guess with a
	// repeated letter can therefore downgrade a letter marked earlier.
	LastWrite MergePolicy = iota
	// Monotonic keeps the highest-precedence mark seen so far.
	Monotonic
)

// String returns the policy name as used in configuration.
func (p MergePolicy) String() string {
	switch p {
	case LastWrite:
		return "last-write"
	case Monotonic:
		return "monotonic"
	default:
		return "unknown"
	}
}

// ParseMergePolicy parses a policy name. The empty string selects LastWrite.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last-write", "lastwrite":
		return LastWrite, nil
	case "monotonic":
		return Monotonic, nil
	default:
		return LastWrite, fmt.Errorf("unknown keyboard policy %q", s)
	}
}

// KeyboardKey is one letter of the on-screen keyboard with its best-known mark.
type KeyboardKey struct {
	Letter rune
	Mark   Mark
	Marked bool
}

// Keyboard accumulates per-letter feedback across the guesses of a round.
type Keyboard struct {
	policy MergePolicy
	marks  [26]Mark
	marked [26]bool
}

// NewKeyboard creates an empty keyboard using the given merge policy.
func NewKeyboard(policy MergePolicy) *Keyboard {
	return &Keyboard{policy: policy}
}

// Policy returns the keyboard's merge policy.
func (k *Keyboard) Policy() MergePolicy {
	return k.policy
}

// Mark records m for letter. Letters outside a-z are ignored.
func (k *Keyboard) Mark(letter rune, m Mark) {
	i, ok := letterIndex(letter)
	if !ok {
		return
	}
	if k.policy == Monotonic && k.marked[i] && k.marks[i] >= m {
		return
	}
	k.marks[i] = m
	k.marked[i] = true
}

// MarkGuess records every letter of word with its mark, in order.
func (k *Keyboard) MarkGuess(word string, marks Marks) {
	for i, c := range word {
		if i >= WordLength {
			break
		}
		k.Mark(c, marks[i])
	}
}

// Get returns the mark for letter and whether it has been marked at all.
func (k *Keyboard) Get(letter rune) (Mark, bool) {
	i, ok := letterIndex(letter)
	if !ok || !k.marked[i] {
		return MarkIncorrect, false
	}
	return k.marks[i], true
}

// State returns the marked letters. Unmarked letters are absent.
func (k *Keyboard) State() map[rune]Mark {
	out := make(map[rune]Mark)
	for i, ok := range k.marked {
		if ok {
			out[rune('a'+i)] = k.marks[i]
		}
	}
	return out
}

// Rows returns the keyboard in QWERTY layout, one slice per row.
func (k *Keyboard) Rows() [][]KeyboardKey {
	rows := make([][]KeyboardKey, 0, len(layoutRows))
	for _, letters := range layoutRows {
		row := make([]KeyboardKey, 0, len(letters))
		for _, c := range letters {
			m, ok := k.Get(c)
			row = append(row, KeyboardKey{Letter: c, Mark: m, Marked: ok})
		}
		rows = append(rows, row)
	}
	return rows
}

// letterIndex maps a lowercase ASCII letter to 0..25.
func letterIndex(c rune) (int, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}
