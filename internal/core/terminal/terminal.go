// Package terminal provides terminal-related utility functions
package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// FallbackWidth is used when no terminal width can be determined
const FallbackWidth = 50

var (
	getSize = term.GetSize
	getenv  = os.Getenv
)

// Width returns the current terminal width in columns. The second result
// is false when the width could not be detected and FallbackWidth is
// returned instead.
func Width() (int, bool) {
	// Try stdout first, then stderr for piped output
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if w, _, err := getSize(f.Fd()); err == nil && w > 0 {
			return w, true
		}
	}

	if w, err := strconv.Atoi(getenv("COLUMNS")); err == nil && w > 0 {
		return w, true
	}

	return FallbackWidth, false
}
