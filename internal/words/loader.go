package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNoSecrets is returned when the answer list ends up empty.
	ErrNoSecrets = errors.New("no secret words loaded")
	// ErrBadWord is returned when a list contains something other than a
	// five-letter a-z word.
	ErrBadWord = errors.New("invalid word")
)

// Sources names optional on-disk overrides for the embedded lists.
// Empty paths fall back to the embedded defaults.
type Sources struct {
	AnswersFile string
	AllowedFile string
}

// Load builds a repository from the configured sources.
func Load(src Sources) (*Repository, error) {
	answers, err := readList(src.AnswersFile, answersFile)
	if err != nil {
		return nil, err
	}
	allowed, err := readList(src.AllowedFile, allowedFile)
	if err != nil {
		return nil, err
	}
	return New(answers, allowed)
}

// MustLoadDefault loads the embedded lists, panicking on error.
// Use this where the bundled data must be present for the game to function.
func MustLoadDefault() *Repository {
	repo, err := Load(Sources{})
	if err != nil {
		panic(err)
	}
	return repo
}

// readList reads path from disk, or the embedded file when path is empty.
func readList(path, embedded string) ([]string, error) {
	var (
		f   io.ReadCloser
		err error
	)
	name := path
	if path == "" {
		name = embedded
		f, err = listFS.Open(embedded)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", name, err)
	}
	defer f.Close()

	return parseList(name, f)
}

// parseList reads one word per line. Blank lines and lines starting with '#'
// are skipped; everything else is lowercased and must be exactly five letters.
func parseList(name string, r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.ToLower(strings.TrimSpace(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if !IsWord(s) {
			return nil, fmt.Errorf("%s:%d: %q: %w", name, line, s, ErrBadWord)
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", name, err)
	}
	return out, nil
}

// IsWord reports whether s is exactly Length lowercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
