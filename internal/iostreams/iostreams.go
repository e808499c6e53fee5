// Package iostreams provides testable access to the process's standard
// streams, following the GitHub CLI pattern.
package iostreams

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IOStreams provides access to standard input/output/error streams.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// colorEnabled controls color output.
	// -1 = auto (detect from TTY), 0 = disabled, 1 = enabled
	colorEnabled int

	// isOutputTTY caches whether stdout is a terminal.
	// -1 = unchecked, 0 = false, 1 = true
	isOutputTTY int
}

// System returns IOStreams connected to the process's standard streams.
func System() *IOStreams {
	return &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		colorEnabled: -1,
		isOutputTTY:  -1,
	}
}

// IsOutputTTY reports whether Out is a terminal.
func (s *IOStreams) IsOutputTTY() bool {
	if s.isOutputTTY >= 0 {
		return s.isOutputTTY == 1
	}
	f, ok := s.Out.(*os.File)
	s.isOutputTTY = boolToInt(ok && term.IsTerminal(int(f.Fd())))
	return s.isOutputTTY == 1
}

// ColorEnabled reports whether output should be colored. Auto mode colors
// only terminals and honors NO_COLOR and CLICOLOR.
func (s *IOStreams) ColorEnabled() bool {
	if s.colorEnabled >= 0 {
		return s.colorEnabled == 1
	}
	if termenv.EnvNoColor() {
		return false
	}
	return s.IsOutputTTY()
}

// SetColorEnabled forces colors on or off.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = boolToInt(enabled)
}

// ColorScheme returns a ColorScheme matching ColorEnabled.
func (s *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(s.ColorEnabled())
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
