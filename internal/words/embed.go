// Package words provides the bundled word lists and the repository used to
// pick secret words and validate guesses.
package words

import "embed"

// listFS embeds the default word lists at build time.
//
//go:embed answers.txt allowed.txt
var listFS embed.FS

const (
	answersFile = "answers.txt"
	allowedFile = "allowed.txt"
)
