package game

import (
	"math/rand"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	C, M, I := MarkCorrect, MarkMisplaced, MarkIncorrect
	tests := []struct {
		secret, guess string
		want          Marks
	}{
		{"crane", "crane", Marks{C, C, C, C, C}},
		{"allot", "lolly", Marks{M, M, C, I, I}},
		{"crane", "pious", Marks{I, I, I, I, I}},
		{"crane", "nacre", Marks{M, M, M, M, C}},
		{"abbey", "babes", Marks{M, M, C, C, I}},
		{"speed", "geese", Marks{I, M, C, M, I}},
		{"those", "geese", Marks{I, I, I, C, C}},
		{"CRANE", "crane", Marks{C, C, C, C, C}},
	}

	for _, tt := range tests {
		got := Evaluate(tt.secret, tt.guess)
		if got != tt.want {
			t.Errorf("Evaluate(%q, %q) = %s, want %s", tt.secret, tt.guess, got, tt.want)
		}
	}
}

func TestEvaluateShortInput(t *testing.T) {
	// Never panics; missing positions stay incorrect.
	got := Evaluate("crane", "cr")
	want := Marks{MarkCorrect, MarkCorrect, MarkIncorrect, MarkIncorrect, MarkIncorrect}
	if got != want {
		t.Errorf("Evaluate(\"crane\", \"cr\") = %s, want %s", got, want)
	}
}

func randomWord(rng *rand.Rand, alphabet string) string {
	b := make([]byte, WordLength)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func TestEvaluateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	// A small alphabet forces plenty of repeated letters.
	const alphabet = "abcde"

	for n := 0; n < 2000; n++ {
		secret := randomWord(rng, alphabet)
		guess := randomWord(rng, alphabet)
		marks := Evaluate(secret, guess)

		exact, correct := 0, 0
		for i := 0; i < WordLength; i++ {
			if secret[i] == guess[i] {
				exact++
			}
			if marks[i] == MarkCorrect {
				correct++
				if secret[i] != guess[i] {
					t.Fatalf("Evaluate(%q, %q)[%d] correct on mismatch", secret, guess, i)
				}
			}
		}
		if correct != exact {
			t.Fatalf("Evaluate(%q, %q) has %d correct, want %d", secret, guess, correct, exact)
		}

		for _, c := range alphabet {
			hits := 0
			for i, m := range marks {
				if rune(guess[i]) == c && m != MarkIncorrect {
					hits++
				}
			}
			if limit := strings.Count(secret, string(c)); hits > limit {
				t.Fatalf("Evaluate(%q, %q) matched %q %d times, secret has %d",
					secret, guess, c, hits, limit)
			}
		}

		if again := Evaluate(secret, guess); again != marks {
			t.Fatalf("Evaluate(%q, %q) not deterministic: %s != %s", secret, guess, marks, again)
		}
	}
}

func TestMarkString(t *testing.T) {
	tests := []struct {
		mark     Mark
		expected string
	}{
		{MarkIncorrect, "incorrect"},
		{MarkMisplaced, "misplaced"},
		{MarkCorrect, "correct"},
		{Mark(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mark.String(); got != tt.expected {
			t.Errorf("Mark(%d).String() = %q, want %q", tt.mark, got, tt.expected)
		}
	}
}

func TestMarksSolved(t *testing.T) {
	if !(Marks{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}).Solved() {
		t.Error("all-correct Marks.Solved() = false, want true")
	}
	if (Marks{MarkCorrect, MarkCorrect, MarkMisplaced, MarkCorrect, MarkCorrect}).Solved() {
		t.Error("Marks with a misplaced letter Solved() = true, want false")
	}
}
