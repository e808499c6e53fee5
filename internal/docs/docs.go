// Package docs renders reference documentation for the stubdemo command tree
// as Markdown, man pages and YAML, plus a contract and preset reference page.
package docs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// renderFunc writes the page for one command.
type renderFunc func(cmd *cobra.Command, w io.Writer) error

// genTree renders every visible command under root, depth first, into dir.
// name maps a command to its file name.
func genTree(root *cobra.Command, dir string, name func(*cobra.Command) string, render renderFunc) error {
	for _, c := range visibleCommands(root) {
		if err := genTree(c, dir, name, render); err != nil {
			return err
		}
	}

	filename := filepath.Join(dir, name(root))
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer f.Close()

	if err := render(root, f); err != nil {
		return fmt.Errorf("failed to render %s: %w", filename, err)
	}
	return nil
}

// visibleCommands returns cmd's non-hidden subcommands except help and
// completion, sorted by name.
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var commands []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.Hidden || c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		commands = append(commands, c)
	}
	slices.SortFunc(commands, func(a, b *cobra.Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return commands
}

// basename joins a command path with sep: "stubdemo run" -> "stubdemo_run".
func basename(cmd *cobra.Command, sep string) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", sep)
}

// prepare adds cobra's implicit help flag so it appears in the output.
func prepare(cmd *cobra.Command) {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()
}
