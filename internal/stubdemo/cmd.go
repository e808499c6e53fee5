package stubdemo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schmitthub/stubkit/internal/cmd/factory"
	"github.com/schmitthub/stubkit/internal/cmd/root"
	"github.com/schmitthub/stubkit/internal/cmdutil"
	"github.com/schmitthub/stubkit/internal/iostreams"
	"github.com/schmitthub/stubkit/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = ""
)

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the stubdemo CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := factory.New(Version, Commit)
	rootCmd := root.NewCmdRoot(f, Version, BuildDate)
	rootCmd.SetArgs(os.Args[1:])

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		return printError(f.IOStreams, cmd.UsageString(), err)
	}
	return exitOk
}

// printError reports err and returns the exit code for it.
func printError(ios *iostreams.IOStreams, usage string, err error) int {
	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	cs := ios.ColorScheme()
	fmt.Fprintf(ios.ErrOut, "%s %s\n", cs.FailureIcon(), err)

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		fmt.Fprintf(ios.ErrOut, "\n%s", usage)
		return exitUsage
	}
	return exitError
}
