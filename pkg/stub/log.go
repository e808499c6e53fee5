package stub

import "github.com/rs/zerolog"

// log is the package logger. It discards everything until SetLogger is called.
var log = zerolog.Nop()

// SetLogger sets the logger used for build and unstubbed-invocation events.
func SetLogger(l zerolog.Logger) {
	log = l.With().Str("component", "stub").Logger()
}
