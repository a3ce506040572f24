package game

import "strings"

// WordLength is the number of letters in a guess.
const WordLength = 5

// Mark classifies a single guessed letter against the secret word.
// Values are ordered by precedence: Correct > Misplaced > Incorrect.
type Mark int

const (
	// MarkIncorrect means the letter is not in the secret word (or all of its
	// occurrences were already matched).
	MarkIncorrect Mark = iota
	// MarkMisplaced means the letter is in the secret word at another position.
	MarkMisplaced
	// MarkCorrect means the letter is at the right position.
	MarkCorrect
)

// String returns a human-readable mark name.
func (m Mark) String() string {
	switch m {
	case MarkIncorrect:
		return "incorrect"
	case MarkMisplaced:
		return "misplaced"
	case MarkCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// Marks is the per-letter classification of one guess.
type Marks [WordLength]Mark

// Solved reports whether every letter is correct.
func (ms Marks) Solved() bool {
	for _, m := range ms {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// String renders marks compactly: G correct, Y misplaced, '.' incorrect.
func (ms Marks) String() string {
	var b strings.Builder
	for _, m := range ms {
		switch m {
		case MarkCorrect:
			b.WriteByte('G')
		case MarkMisplaced:
			b.WriteByte('Y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Evaluate compares guess against secret.
//
// Exact matches are found first and consume their secret letter. Each
// remaining guess letter then consumes the first unused occurrence of the same
// letter in the secret, if any. A letter that appears k times in the secret is
// therefore reported as Correct or Misplaced at most k times.
//
// Both words are lowercased before comparison. Callers pass WordLength-byte
// words; any excess is ignored and missing positions stay Incorrect.
func Evaluate(secret, guess string) Marks {
	var marks Marks
	s := []byte(strings.ToLower(secret))
	g := strings.ToLower(guess)
	n := min(len(s), len(g), WordLength)

	for i := 0; i < n; i++ {
		if g[i] == s[i] {
			marks[i] = MarkCorrect
			s[i] = 0
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		for j := 0; j < len(s); j++ {
			if s[j] == g[i] {
				marks[i] = MarkMisplaced
				s[j] = 0
				break
			}
		}
	}

	return marks
}
