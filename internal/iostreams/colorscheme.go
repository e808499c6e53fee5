package iostreams

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorSuccess = lipgloss.Color("#04B575")
	ColorWarning = lipgloss.Color("#FFCC00")
	ColorError   = lipgloss.Color("#FF5F87")
	ColorMuted   = lipgloss.Color("#626262")
	ColorInfo    = lipgloss.Color("#87CEEB")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	infoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// ColorScheme formats terminal output. When colors are disabled every method
// returns its input unmodified.
type ColorScheme struct {
	enabled bool
}

// NewColorScheme creates a ColorScheme.
func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

// Enabled returns whether colors are enabled.
func (cs *ColorScheme) Enabled() bool {
	return cs.enabled
}

func (cs *ColorScheme) render(style lipgloss.Style, s string) string {
	if !cs.enabled {
		return s
	}
	return style.Render(s)
}

// Success returns s in the success color.
func (cs *ColorScheme) Success(s string) string { return cs.render(successStyle, s) }

// Warning returns s in the warning color.
func (cs *ColorScheme) Warning(s string) string { return cs.render(warningStyle, s) }

// Error returns s in the error color.
func (cs *ColorScheme) Error(s string) string { return cs.render(errorStyle, s) }

// Muted returns s dimmed.
func (cs *ColorScheme) Muted(s string) string { return cs.render(mutedStyle, s) }

// Info returns s in the info color.
func (cs *ColorScheme) Info(s string) string { return cs.render(infoStyle, s) }

// Bold returns s in bold.
func (cs *ColorScheme) Bold(s string) string { return cs.render(boldStyle, s) }

// Errorf formats and returns the result in the error color.
func (cs *ColorScheme) Errorf(format string, a ...any) string {
	return cs.Error(fmt.Sprintf(format, a...))
}

// SuccessIcon returns a check mark.
func (cs *ColorScheme) SuccessIcon() string { return cs.Success("✓") }

// FailureIcon returns a cross.
func (cs *ColorScheme) FailureIcon() string { return cs.Error("✗") }

// WarningIcon returns an exclamation mark.
func (cs *ColorScheme) WarningIcon() string { return cs.Warning("!") }
