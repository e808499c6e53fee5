package script

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/stubkit/internal/logger"
	"github.com/schmitthub/stubkit/internal/logger/loggertest"
	"github.com/schmitthub/stubkit/pkg/stub"
)

func newTestRunner(tl *loggertest.TestLogger) *Runner {
	return NewRunner(
		WithLogger(tl.Logger()),
		WithRunID(func() string { return "run-1" }),
	)
}

func TestRunner_Run(t *testing.T) {
	tl := loggertest.New()
	s := &Script{
		Name:      "mixed",
		Contract:  "vehicle",
		Presets:   []string{"noop"},
		Overrides: map[string]any{"steer": "unstubbed", "speed": 4},
		Calls: []string{
			"get speed",
			"steer left 10",
			"accelerate fast",
			"stop",
			`steer "left`,
		},
	}

	report, err := newTestRunner(tl).Run(s)
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, "mixed", report.Script)
	assert.Equal(t, "vehicle", report.Contract)
	require.Len(t, report.Results, 5)

	assert.Equal(t, "4", report.Results[0].Output)
	assert.True(t, report.Results[0].OK())

	require.NotNil(t, report.Results[1].Unstubbed)
	assert.Equal(t, "Steer", report.Results[1].Unstubbed.Member)

	assert.ErrorIs(t, report.Results[2].Err, ErrBadArgs)
	assert.Equal(t, "true", report.Results[3].Output)
	assert.ErrorIs(t, report.Results[4].Err, ErrBadArgs)

	assert.Equal(t, 1, report.UnstubbedCount())
	assert.Equal(t, 2, report.ErrorCount())

	// The call log includes the unstubbed attempt but not the unparsable lines.
	methods := make([]string, len(report.Calls))
	for i, c := range report.Calls {
		methods[i] = c.Method
	}
	assert.Equal(t, []string{"Steer", "Stop"}, methods)

	assert.Contains(t, tl.Output(), "run complete")
	assert.Contains(t, tl.Output(), `"run":"run-1"`)
}

func TestRunner_Run_BuildError(t *testing.T) {
	_, err := newTestRunner(loggertest.NewNop()).Run(&Script{
		Contract: "httpclient",
		Presets:  []string{"flaky"},
		Calls:    []string{"close"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, stub.ErrUnknownPreset)
	assert.Contains(t, err.Error(), "build httpclient stub")
}

func TestRunner_Run_UnknownContract(t *testing.T) {
	_, err := newTestRunner(loggertest.NewNop()).Run(&Script{Contract: "boat", Calls: []string{"x"}})
	assert.ErrorIs(t, err, ErrUnknownContract)
}

func TestRunner_Run_DefaultRunID(t *testing.T) {
	r := NewRunner(WithLogger(loggertest.NewNop().Logger()))
	report, err := r.Run(&Script{Contract: "httpclient", Presets: []string{"noop"}, Calls: []string{"close"}})
	require.NoError(t, err)
	assert.Len(t, report.RunID, 36)
}

func TestNewRunner_DefaultLoggerTagsComponent(t *testing.T) {
	prev := logger.Log
	t.Cleanup(func() { logger.Log = prev })
	var buf bytes.Buffer
	logger.Log = zerolog.New(&buf).Level(zerolog.DebugLevel)

	r := NewRunner(WithRunID(func() string { return "run-2" }))
	_, err := r.Run(&Script{Name: "tagged", Contract: "vehicle", Presets: []string{"noop"}, Calls: []string{"stop"}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"component":"runner"`)
	assert.Contains(t, buf.String(), `"run":"run-2"`)
}
