// Package game provides the round state machine, feedback evaluation and the
// session loop that drives them.
package game

// State represents the current round state.
type State int

const (
	// StatePlaying is the initial state; the player is still guessing.
	StatePlaying State = iota
	// StateWon means the last submitted guess matched the secret word.
	StateWon
	// StateLost means all attempts were used without a match.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round is over.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}
