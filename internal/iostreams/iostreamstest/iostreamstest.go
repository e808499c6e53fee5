// Package iostreamstest provides test doubles for the iostreams package.
package iostreamstest

import (
	"bytes"

	"github.com/schmitthub/stubkit/internal/iostreams"
)

// TestIOStreams wraps IOStreams for testing with accessible buffers.
type TestIOStreams struct {
	*iostreams.IOStreams
	InBuf  *bytes.Buffer
	OutBuf *bytes.Buffer
	ErrBuf *bytes.Buffer
}

// New creates IOStreams for testing. Colors are disabled.
func New() *TestIOStreams {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	ios := &iostreams.IOStreams{
		In:     in,
		Out:    out,
		ErrOut: errOut,
	}
	ios.SetColorEnabled(false)

	return &TestIOStreams{
		IOStreams: ios,
		InBuf:     in,
		OutBuf:    out,
		ErrBuf:    errOut,
	}
}
