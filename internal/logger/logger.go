package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the rotating log file inside the logs directory.
const LogFileName = "stubdemo.log"

var (
	// Log is the global logger instance
	Log = zerolog.Nop()

	// fileWriter is the file output for logging (with rotation)
	fileWriter *lumberjack.Logger

	// runContext holds the scenario run context for log entries (optional, may be empty)
	runContext   runContextData
	runContextMu sync.RWMutex
)

// runContextData holds optional run and script context for log entries.
type runContextData struct {
	RunID  string
	Script string
}

// SetRunContext sets run and script context for all subsequent log entries.
// Pass empty strings to clear. Thread-safe.
func SetRunContext(runID, script string) {
	runContextMu.Lock()
	defer runContextMu.Unlock()
	runContext = runContextData{
		RunID:  runID,
		Script: script,
	}
}

// ClearRunContext clears the run context.
func ClearRunContext() {
	SetRunContext("", "")
}

// getRunContext returns current context (thread-safe read).
func getRunContext() runContextData {
	runContextMu.RLock()
	defer runContextMu.RUnlock()
	return runContext
}

// addContext adds run/script fields to an event if set.
func addContext(event *zerolog.Event) *zerolog.Event {
	ctx := getRunContext()
	if ctx.RunID != "" {
		event = event.Str("run", ctx.RunID)
	}
	if ctx.Script != "" {
		event = event.Str("script", ctx.Script)
	}
	return event
}

// LoggingConfig holds configuration for file-based logging.
// This mirrors internal/config.LoggingConfig to avoid an import cycle.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 50 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 50
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
}

// Init initializes console-only logging to stderr.
func Init(debug bool) {
	InitWithWriter(debug, os.Stderr)
}

// InitWithWriter initializes console-only logging to out.
func InitWithWriter(debug bool, out io.Writer) {
	Log = zerolog.New(consoleWriter(out)).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// InitWithFile initializes the logger with optional file output.
// If logsDir is empty or cfg indicates file logging is disabled,
// this behaves like Init (console-only).
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Init(debug)
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Close any writer left over from a previous init.
	_ = CloseFileWriter()

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, LogFileName),
		MaxSize:    cfg.GetMaxSizeMB(),  // MB
		MaxAge:     cfg.GetMaxAgeDays(), // days
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
	}

	// Console is human-readable, file is JSON.
	multi := zerolog.MultiLevelWriter(consoleWriter(os.Stderr), fileWriter)

	Log = zerolog.New(multi).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()

	return nil
}

// CloseFileWriter closes the file writer if it exists.
// Call this on program shutdown for clean log file closure.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil
		return err
	}
	return nil
}

// GetLogFilePath returns the path to the current log file, or empty string if file logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return addContext(Log.Debug())
}

// Info logs an info message
func Info() *zerolog.Event {
	return addContext(Log.Info())
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return addContext(Log.Warn())
}

// Error logs an error message
func Error() *zerolog.Event {
	return addContext(Log.Error())
}

// WithField returns a logger with an additional field
func WithField(key string, value any) zerolog.Logger {
	return Log.With().Interface(key, value).Logger()
}
