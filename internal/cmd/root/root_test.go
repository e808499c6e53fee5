package root

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/stubkit/internal/cmdutil"
	"github.com/schmitthub/stubkit/internal/config"
	"github.com/schmitthub/stubkit/internal/iostreams/iostreamstest"
	"github.com/schmitthub/stubkit/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestNewCmdRoot_Subcommands(t *testing.T) {
	f := &cmdutil.Factory{Version: "1.0.0"}
	cmd := NewCmdRoot(f, "1.0.0", "")

	for _, name := range []string{"run", "presets", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.Equal(t, name, sub.Name())
			require.NotEmpty(t, sub.Short)
		})
	}

	require.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	require.NotNil(t, cmd.PersistentFlags().ShorthandLookup("D"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestNewCmdRoot_ConfigFlag(t *testing.T) {
	tio := iostreamstest.New()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams}
	cmd := NewCmdRoot(f, "1.0.0", "")

	cmd.SetArgs([]string{"--config", "/tmp/custom.yaml", "version"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "/tmp/custom.yaml", f.ConfigPath)
	require.Equal(t, "stubdemo version 1.0.0\n", tio.OutBuf.String())
}

func TestNewCmdRoot_UnknownFlagIsFlagError(t *testing.T) {
	tio := iostreamstest.New()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams}
	cmd := NewCmdRoot(f, "1.0.0", "")

	cmd.SetArgs([]string{"version", "--bogus"})
	err := cmd.Execute()
	require.Error(t, err)

	var flagErr *cmdutil.FlagError
	require.True(t, errors.As(err, &flagErr))
	require.Contains(t, err.Error(), "unknown flag: --bogus")
}

func TestInitializeLogger_WritesLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnvVar, home)
	t.Cleanup(func() { _ = logger.CloseFileWriter() })

	f := &cmdutil.Factory{
		Settings: func() (*config.Settings, error) { return config.DefaultSettings(), nil },
	}
	initializeLogger(f, true)

	require.Equal(t, filepath.Join(home, "logs", logger.LogFileName), logger.GetLogFilePath())
	logger.Debug().Msg("hello")
	_, err := os.Stat(logger.GetLogFilePath())
	require.NoError(t, err)
}

func TestInitializeLogger_FileDisabled(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())

	disabled := false
	f := &cmdutil.Factory{
		Settings: func() (*config.Settings, error) {
			s := config.DefaultSettings()
			s.Logging.FileEnabled = &disabled
			return s, nil
		},
	}
	initializeLogger(f, false)

	require.Empty(t, logger.GetLogFilePath())
}
