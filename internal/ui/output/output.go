// Package output builds the termenv outputs apkfetch writes status lines and
// logs to.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Stream names one of the two places apkfetch writes to.
type Stream int

const (
	// Status is stdout. It keeps basic ANSI colors even when piped.
	Status Stream = iota
	// Log is stderr. Its colors follow the detected terminal capabilities.
	Log
)

// Profile returns the color profile of the stream. NO_COLOR forces Ascii on both.
func (s Stream) Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if s == Status {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// New returns an output for the stream writing to w. A nil w selects the
// stream's own file.
func New(w io.Writer, s Stream) *termenv.Output {
	if w == nil {
		w = os.Stderr
		if s == Status {
			w = os.Stdout
		}
	}
	return termenv.NewOutput(w, termenv.WithProfile(s.Profile()), termenv.WithTTY(true))
}
