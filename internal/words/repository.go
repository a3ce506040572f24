package words

import (
	"math/rand"
)

// Length is the number of letters in every word.
const Length = 5

// Repository holds the immutable secret and acceptable-guess sets.
type Repository struct {
	secrets    []string
	secretSet  map[string]struct{}
	acceptable map[string]struct{} // secrets ∪ allowed
}

// New creates a repository from secret words and additional acceptable
// guesses. Secrets are always acceptable. Duplicates are collapsed.
func New(secrets, allowed []string) (*Repository, error) {
	r := &Repository{
		secrets:    make([]string, 0, len(secrets)),
		secretSet:  make(map[string]struct{}, len(secrets)),
		acceptable: make(map[string]struct{}, len(secrets)+len(allowed)),
	}
	for _, w := range secrets {
		if _, dup := r.secretSet[w]; dup {
			continue
		}
		r.secretSet[w] = struct{}{}
		r.acceptable[w] = struct{}{}
		r.secrets = append(r.secrets, w)
	}
	for _, w := range allowed {
		r.acceptable[w] = struct{}{}
	}
	if len(r.secrets) == 0 {
		return nil, ErrNoSecrets
	}
	return r, nil
}

// IsValidSecret reports whether word is in the secret set.
func (r *Repository) IsValidSecret(word string) bool {
	_, ok := r.secretSet[word]
	return ok
}

// IsAcceptableGuess reports whether word may be submitted as a guess.
func (r *Repository) IsAcceptableGuess(word string) bool {
	_, ok := r.acceptable[word]
	return ok
}

// RandomSecret picks a secret word uniformly at random.
func (r *Repository) RandomSecret(rng *rand.Rand) string {
	return r.secrets[rng.Intn(len(r.secrets))]
}

// SecretCount returns the number of distinct secret words.
func (r *Repository) SecretCount() int {
	return len(r.secrets)
}

// AcceptableCount returns the number of distinct acceptable guesses.
func (r *Repository) AcceptableCount() int {
	return len(r.acceptable)
}
