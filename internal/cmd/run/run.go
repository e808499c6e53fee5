package run

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/schmitthub/stubkit/internal/cmdutil"
	"github.com/schmitthub/stubkit/internal/config"
	"github.com/schmitthub/stubkit/internal/iostreams"
	"github.com/schmitthub/stubkit/internal/logger"
	"github.com/schmitthub/stubkit/internal/script"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	IOStreams *iostreams.IOStreams
	Settings  func() (*config.Settings, error)

	Watch           bool
	FailOnUnstubbed bool
	// failOnUnstubbedSet records whether the flag was given explicitly.
	// Otherwise the settings file decides.
	failOnUnstubbedSet bool

	ScriptPath string
}

// NewCmdRun creates the run command.
func NewCmdRun(f *cmdutil.Factory, runF func(context.Context, *RunOptions) error) *cobra.Command {
	opts := &RunOptions{
		IOStreams: f.IOStreams,
		Settings:  f.Settings,
	}

	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Run a scenario script against a stub",
		Long: `Builds a stub for the contract named in a scenario script, applies its
presets and overrides, and performs each call line in order.

Each result is printed as it would be returned by the stub. A call that
reaches a member with no configured behavior is reported as unstubbed; by
default this makes the command exit non-zero (see run.fail_on_unstubbed).

With --watch the script is re-run whenever the file changes, until
interrupted.`,
		Example: `  # Run a script once
  stubdemo run steer.yaml

  # Report unstubbed calls without failing
  stubdemo run --fail-on-unstubbed=false steer.yaml

  # Re-run on every save
  stubdemo run --watch steer.yaml`,
		Args: cmdutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ScriptPath = args[0]
			opts.failOnUnstubbedSet = cmd.Flags().Changed("fail-on-unstubbed")
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return runRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run the script whenever it changes")
	cmd.Flags().BoolVar(&opts.FailOnUnstubbed, "fail-on-unstubbed", true, "Exit non-zero when a call reaches an unstubbed member")

	return cmd
}

func runRun(ctx context.Context, opts *RunOptions) error {
	settings := config.DefaultSettings()
	if opts.Settings != nil {
		loaded, err := opts.Settings()
		if err != nil {
			return err
		}
		settings = loaded
	}
	failOnUnstubbed := settings.Run.FailOnUnstubbed
	if opts.failOnUnstubbedSet {
		failOnUnstubbed = opts.FailOnUnstubbed
	}

	runner := script.NewRunner()

	if !opts.Watch {
		return runOnce(opts.IOStreams, runner, opts.ScriptPath, failOnUnstubbed)
	}

	w, err := script.NewWatcher(opts.ScriptPath, settings.Run.WatchDebounce)
	if err != nil {
		return err
	}
	defer w.Close()

	ios := opts.IOStreams
	cs := ios.ColorScheme()
	report := func() {
		if err := runOnce(ios, runner, opts.ScriptPath, failOnUnstubbed); err != nil && !errors.Is(err, cmdutil.SilentError) {
			fmt.Fprintf(ios.ErrOut, "%s %v\n", cs.FailureIcon(), err)
		}
		fmt.Fprintf(ios.ErrOut, "%s\n", cs.Muted("watching "+opts.ScriptPath+" for changes"))
	}

	logger.Info().Str("script", opts.ScriptPath).Dur("debounce", settings.Run.WatchDebounce).Msg("watching script")
	if path := logger.GetLogFilePath(); path != "" {
		fmt.Fprintf(ios.ErrOut, "%s\n", cs.Muted("logging to "+path))
	}

	report()
	return w.Run(ctx, func() error {
		logger.Debug().Str("script", opts.ScriptPath).Msg("re-running script")
		fmt.Fprintln(ios.Out)
		report()
		return nil
	})
}

// runOnce loads and runs the script, prints the report, and returns
// cmdutil.SilentError when the run should fail the command.
func runOnce(ios *iostreams.IOStreams, runner *script.Runner, path string, failOnUnstubbed bool) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	report, err := runner.Run(s)
	if err != nil {
		return err
	}

	printReport(ios.Out, ios.ColorScheme(), report)

	if report.ErrorCount() > 0 {
		return cmdutil.SilentError
	}
	if failOnUnstubbed && report.UnstubbedCount() > 0 {
		return cmdutil.SilentError
	}
	return nil
}

func printReport(out io.Writer, cs *iostreams.ColorScheme, report *script.Report) {
	fmt.Fprintf(out, "%s %s\n", cs.Bold(report.Script), cs.Muted("("+report.Contract+")"))
	for _, res := range report.Results {
		switch {
		case res.Unstubbed != nil:
			fmt.Fprintf(out, "  %s %s: %s\n", cs.WarningIcon(), res.Line, cs.Warning(res.Unstubbed.Error()))
		case res.Err != nil:
			fmt.Fprintf(out, "  %s %s: %s\n", cs.FailureIcon(), res.Line, cs.Error(res.Err.Error()))
		default:
			fmt.Fprintf(out, "  %s %s => %s\n", cs.SuccessIcon(), res.Line, res.Output)
		}
	}
	fmt.Fprintf(out, "%d %s, %d unstubbed, %d %s\n",
		len(report.Results), plural(len(report.Results), "call"),
		report.UnstubbedCount(),
		report.ErrorCount(), plural(report.ErrorCount(), "error"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
