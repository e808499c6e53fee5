package script

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/schmitthub/stubkit/internal/logger"
	"github.com/schmitthub/stubkit/pkg/stub"
)

// Result is the outcome of one call line.
type Result struct {
	Line   string
	Output string
	// Err is set when the line could not be performed.
	Err error
	// Unstubbed is set when the call reached a slot with no behavior.
	Unstubbed *stub.UnstubbedError
}

// OK reports whether the line ran to completion.
func (r Result) OK() bool {
	return r.Err == nil && r.Unstubbed == nil
}

// Report is the outcome of one script run.
type Report struct {
	RunID    string
	Script   string
	Contract string
	Results  []Result
	// Calls is the stub's call log after the last line.
	Calls []stub.Call
}

// UnstubbedCount returns the number of lines that hit an unstubbed slot.
func (r *Report) UnstubbedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Unstubbed != nil {
			n++
		}
	}
	return n
}

// ErrorCount returns the number of lines that failed for another reason.
func (r *Report) ErrorCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Runner builds stubs from scripts and drives them.
type Runner struct {
	log   zerolog.Logger
	newID func() string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the Runner's logger. The default is the package logger
// tagged with component=runner.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = l
	}
}

// WithRunID fixes the run ID generator.
func WithRunID(fn func() string) RunnerOption {
	return func(r *Runner) {
		r.newID = fn
	}
}

// NewRunner returns a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		log:   logger.WithField("component", "runner"),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run builds the script's stub and performs every call line in order. A
// failing line does not stop the run. The returned error is reserved for
// scripts whose stub cannot be built.
func (r *Runner) Run(s *Script) (*Report, error) {
	c, err := LookupContract(s.Contract)
	if err != nil {
		return nil, err
	}

	runID := r.newID()
	logger.SetRunContext(runID, s.DisplayName())
	defer logger.ClearRunContext()
	log := r.log.With().Str("run", runID).Str("contract", c.Name()).Logger()

	target, err := c.New(s.Presets, s.Overrides)
	if err != nil {
		return nil, fmt.Errorf("build %s stub: %w", c.Name(), err)
	}
	log.Debug().Strs("presets", s.Presets).Msg("stub ready")

	report := &Report{
		RunID:    runID,
		Script:   s.DisplayName(),
		Contract: c.Name(),
		Results:  make([]Result, 0, len(s.Calls)),
	}
	for i, line := range s.Calls {
		res := r.runLine(target, line)
		log.Debug().
			Int("line", i+1).
			Str("call", line).
			Bool("ok", res.OK()).
			Str("output", res.Output).
			Msg("call done")
		report.Results = append(report.Results, res)
	}
	report.Calls = target.Recorder().Calls()

	log.Debug().
		Int("calls", len(report.Results)).
		Int("unstubbed", report.UnstubbedCount()).
		Int("errors", report.ErrorCount()).
		Msg("run complete")
	return report, nil
}

func (r *Runner) runLine(target Target, line string) Result {
	res := Result{Line: line}
	words, err := shlex.Split(line)
	if err != nil {
		res.Err = fmt.Errorf("%w: %v", ErrBadArgs, err)
		return res
	}
	if len(words) == 0 {
		res.Err = fmt.Errorf("%w: empty call", ErrBadArgs)
		return res
	}

	var out string
	var callErr error
	caught := stub.Catch(func() {
		out, callErr = target.Invoke(words[0], words[1:])
	})
	var unstubbed *stub.UnstubbedError
	switch {
	case errors.As(caught, &unstubbed):
		res.Unstubbed = unstubbed
	case callErr != nil:
		res.Err = callErr
	default:
		res.Output = out
	}
	return res
}
