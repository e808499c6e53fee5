package root

import (
	"github.com/schmitthub/stubkit/internal/cmd/presets"
	"github.com/schmitthub/stubkit/internal/cmd/run"
	versioncmd "github.com/schmitthub/stubkit/internal/cmd/version"
	"github.com/schmitthub/stubkit/internal/cmdutil"
	"github.com/schmitthub/stubkit/internal/config"
	"github.com/schmitthub/stubkit/internal/logger"
	"github.com/schmitthub/stubkit/pkg/stub"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the stubdemo CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "stubdemo",
		Short: "Drive configurable test stubs from scenario scripts",
		Long: `Stubdemo builds stubs for the vehicle and HTTP client contracts and drives
them from YAML scenario scripts.

Quick start:
  stubdemo presets            # List contracts and their presets
  stubdemo run steer.yaml     # Run a scenario script
  stubdemo run -w steer.yaml  # Re-run it on every save

Settings are read from ~/.local/stubdemo/settings.yaml (or $STUBDEMO_HOME).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f, debug)
			stub.SetLogger(logger.Log)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("stubdemo starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.ConfigPath, "config", "", "Settings file (default $STUBDEMO_HOME/settings.yaml)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))

	cmd.AddCommand(run.NewCmdRun(f, nil))
	cmd.AddCommand(presets.NewCmdPresets(f, nil))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	if f.Settings == nil {
		logger.Init(debug)
		return
	}

	settings, err := f.Settings()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	logsDir, err := config.LogsDir()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: settings.Logging.FileEnabled,
		MaxSizeMB:   settings.Logging.MaxSizeMB,
		MaxAgeDays:  settings.Logging.MaxAgeDays,
		MaxBackups:  settings.Logging.MaxBackups,
	}

	if err := logger.InitWithFile(debug, logsDir, logCfg); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
