package cmdutil

import (
	"errors"
	"fmt"
)

// FlagError marks a usage mistake: a bad flag, a wrong argument count or an
// unknown contract name. stubdemo prints it followed by the command's usage
// and exits 2.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf returns a FlagError with a formatted message.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// FlagErrorWrap marks err as a usage mistake.
func FlagErrorWrap(err error) error {
	return &FlagError{err: err}
}

// SilentError is returned by commands that already printed their failure,
// such as a run report with failed call lines. stubdemo exits 1 without
// printing it.
var SilentError = errors.New("SilentError")
