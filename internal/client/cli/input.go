package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// readPiped returns everything on f unless f is an interactive terminal, in
// which case it returns an empty string without blocking.
func readPiped(f *os.File) (string, error) {
	if f == nil || isTerminal(int(f.Fd())) {
		return "", nil
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
