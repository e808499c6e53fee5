package cmdutil

import (
	"github.com/schmitthub/stubkit/internal/config"
	"github.com/schmitthub/stubkit/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist, while internal/cmd/factory wires the real
// implementations.
//
// Commands extract only the fields they need into per-command Options
// structs.
type Factory struct {
	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// ConfigPath overrides the settings file location. Set from --config
	// before any command runs.
	ConfigPath string

	// Settings loads the settings file once and caches the result.
	Settings func() (*config.Settings, error)
}
