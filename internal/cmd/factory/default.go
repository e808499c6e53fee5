package factory

import (
	"sync"

	"github.com/schmitthub/stubkit/internal/cmdutil"
	"github.com/schmitthub/stubkit/internal/config"
	"github.com/schmitthub/stubkit/internal/iostreams"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/stubdemo/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: iostreams.System(),
	}

	// Settings are read on first use so --config has been parsed by then.
	var (
		settingsOnce sync.Once
		settings     *config.Settings
		settingsErr  error
	)
	f.Settings = func() (*config.Settings, error) {
		settingsOnce.Do(func() {
			var loader *config.Loader
			loader, settingsErr = config.NewLoader(f.ConfigPath)
			if settingsErr == nil {
				settings, settingsErr = loader.Load()
			}
		})
		return settings, settingsErr
	}

	return f
}
