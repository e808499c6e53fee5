package cmdutil

import (
	"github.com/spf13/cobra"
)

// NoArgs rejects any positional argument. On a command with subcommands the
// first argument is reported as an unknown command.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return FlagErrorf("%s: unknown command: %s %s", binName(cmd), cmd.CommandPath(), args[0])
	}
	return argsError(cmd, "accepts no arguments")
}

// RequiresMaxArgs accepts at most maxArgs positional arguments.
func RequiresMaxArgs(maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) <= maxArgs {
			return nil
		}
		return argsError(cmd, "requires at most %d %s", maxArgs, pluralize("argument", maxArgs))
	}
}

// ExactArgs accepts exactly number positional arguments.
func ExactArgs(number int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == number {
			return nil
		}
		return argsError(cmd, "requires %d %s", number, pluralize("argument", number))
	}
}

// argsError returns a FlagError so the caller prints usage after it.
func argsError(cmd *cobra.Command, format string, a ...any) error {
	prefix := []any{binName(cmd), cmd.CommandPath()}
	return FlagErrorf("%s: '%s' "+format, append(prefix, a...)...)
}

func binName(cmd *cobra.Command) string {
	return cmd.Root().Name()
}

func pluralize(word string, number int) string {
	if number == 1 {
		return word
	}
	return word + "s"
}
