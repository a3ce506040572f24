package game

import "strings"

// MaxAttempts is the number of guesses allowed per round.
const MaxAttempts = 6

// Dictionary decides which words may be submitted as guesses.
type Dictionary interface {
	IsAcceptableGuess(word string) bool
}

// Guess is a submitted word together with its evaluation.
type Guess struct {
	Word  string
	Marks Marks
}

// Status is the outcome of a submit attempt.
type Status int

const (
	// StatusIgnored means nothing happened: the round is over or the
	// current guess is shorter than WordLength.
	StatusIgnored Status = iota
	// StatusRejected means the word is not acceptable. The current guess is
	// kept so the player can correct it.
	StatusRejected
	// StatusContinue means the guess was recorded and the round goes on.
	StatusContinue
	// StatusWon means the guess matched the secret word.
	StatusWon
	// StatusLost means the last attempt was used without a match.
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusIgnored:
		return "ignored"
	case StatusRejected:
		return "rejected"
	case StatusContinue:
		return "continue"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// SubmitResult is returned by Round.Submit.
type SubmitResult struct {
	Status Status
	Marks  Marks // valid when a guess was recorded
}

// Round holds the state of a single game: the secret word, the guesses made
// so far and the guess being typed.
type Round struct {
	secret   string
	dict     Dictionary
	keyboard *Keyboard
	guesses  []Guess
	current  []byte
	state    State
}

// NewRound creates a round for secret. The keyboard must be fresh; it is
// owned by the round from now on.
func NewRound(secret string, dict Dictionary, keyboard *Keyboard) *Round {
	return &Round{
		secret:   strings.ToLower(secret),
		dict:     dict,
		keyboard: keyboard,
		guesses:  make([]Guess, 0, MaxAttempts),
		current:  make([]byte, 0, WordLength),
		state:    StatePlaying,
	}
}

// TypeLetter appends c to the current guess. It reports false and does
// nothing if the round is over, the guess is full, or c is not a-z.
func (r *Round) TypeLetter(c rune) bool {
	if r.state != StatePlaying || len(r.current) >= WordLength {
		return false
	}
	if c < 'a' || c > 'z' {
		return false
	}
	r.current = append(r.current, byte(c))
	return true
}

// Backspace removes the last letter of the current guess. It reports false
// if the round is over or the guess is empty.
func (r *Round) Backspace() bool {
	if r.state != StatePlaying || len(r.current) == 0 {
		return false
	}
	r.current = r.current[:len(r.current)-1]
	return true
}

// Submit evaluates the current guess.
func (r *Round) Submit() SubmitResult {
	if r.state != StatePlaying || len(r.current) != WordLength {
		return SubmitResult{Status: StatusIgnored}
	}

	word := string(r.current)
	if !r.dict.IsAcceptableGuess(word) {
		return SubmitResult{Status: StatusRejected}
	}

	marks := Evaluate(r.secret, word)
	r.guesses = append(r.guesses, Guess{Word: word, Marks: marks})
	r.keyboard.MarkGuess(word, marks)
	r.current = r.current[:0]

	switch {
	case marks.Solved():
		r.state = StateWon
		return SubmitResult{Status: StatusWon, Marks: marks}
	case len(r.guesses) >= MaxAttempts:
		r.state = StateLost
		return SubmitResult{Status: StatusLost, Marks: marks}
	default:
		return SubmitResult{Status: StatusContinue, Marks: marks}
	}
}

// Secret returns the secret word.
func (r *Round) Secret() string {
	return r.secret
}

// Guesses returns the submitted guesses in order. The slice must not be modified.
func (r *Round) Guesses() []Guess {
	return r.guesses
}

// Attempts returns the number of submitted guesses.
func (r *Round) Attempts() int {
	return len(r.guesses)
}

// Current returns the guess being typed.
func (r *Round) Current() string {
	return string(r.current)
}

// State returns the round state.
func (r *Round) State() State {
	return r.state
}

// Keyboard returns the round's keyboard feedback.
func (r *Round) Keyboard() *Keyboard {
	return r.keyboard
}
