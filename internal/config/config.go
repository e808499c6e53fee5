// Package config loads stubdemo settings from settings.yaml in the stubdemo
// home directory, with defaults and STUBDEMO_* environment overrides, using
// viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	// SettingsFileName is the settings file name inside the home directory.
	SettingsFileName = "settings.yaml"

	// HomeEnvVar overrides the stubdemo home directory.
	HomeEnvVar = "STUBDEMO_HOME"

	// EnvPrefix is the prefix for environment overrides, e.g.
	// STUBDEMO_RUN_FAIL_ON_UNSTUBBED=false.
	EnvPrefix = "STUBDEMO"
)

// Settings is the decoded settings file.
type Settings struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Run     RunConfig     `mapstructure:"run" yaml:"run"`
}

// LoggingConfig configures the rotating log file.
type LoggingConfig struct {
	FileEnabled *bool `mapstructure:"file_enabled" yaml:"file_enabled"`
	MaxSizeMB   int   `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxAgeDays  int   `mapstructure:"max_age_days" yaml:"max_age_days"`
	MaxBackups  int   `mapstructure:"max_backups" yaml:"max_backups"`
}

// RunConfig configures `stubdemo run`.
type RunConfig struct {
	// FailOnUnstubbed makes a run exit non-zero when any call hit an
	// unstubbed slot.
	FailOnUnstubbed bool `mapstructure:"fail_on_unstubbed" yaml:"fail_on_unstubbed"`
	// WatchDebounce coalesces bursts of file events in --watch mode.
	WatchDebounce time.Duration `mapstructure:"watch_debounce" yaml:"watch_debounce"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	fileEnabled := true
	return &Settings{
		Logging: LoggingConfig{
			FileEnabled: &fileEnabled,
			MaxSizeMB:   50,
			MaxAgeDays:  7,
			MaxBackups:  3,
		},
		Run: RunConfig{
			FailOnUnstubbed: true,
			WatchDebounce:   200 * time.Millisecond,
		},
	}
}

// HomeDir returns the stubdemo home directory: $STUBDEMO_HOME if set,
// otherwise ~/.local/stubdemo.
func HomeDir() (string, error) {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "stubdemo"), nil
}

// LogsDir returns the directory for log files.
func LogsDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "logs"), nil
}

// Loader reads Settings.
type Loader struct {
	path  string
	viper *viper.Viper
}

// NewLoader returns a Loader for path. An empty path means
// <HomeDir>/settings.yaml.
func NewLoader(path string) (*Loader, error) {
	if path == "" {
		home, err := HomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, SettingsFileName)
	}
	return &Loader{path: path, viper: viper.New()}, nil
}

// Path returns the settings file path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the settings file. A missing file yields defaults; environment
// overrides apply either way.
func (l *Loader) Load() (*Settings, error) {
	v := l.viper
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault("logging.file_enabled", *defaults.Logging.FileEnabled)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	v.SetDefault("run.fail_on_unstubbed", defaults.Run.FailOnUnstubbed)
	v.SetDefault("run.watch_debounce", defaults.Run.WatchDebounce.String())

	if err := v.ReadInConfig(); err != nil {
		// SetConfigFile bypasses viper's search, so a missing file surfaces
		// as a plain fs error rather than ConfigFileNotFoundError.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return &s, nil
}
