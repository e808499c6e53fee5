package presets

import (
	"context"
	"strings"

	"github.com/schmitthub/stubkit/internal/cmdutil"
	"github.com/schmitthub/stubkit/internal/iostreams"
	"github.com/schmitthub/stubkit/internal/script"
	"github.com/spf13/cobra"
)

// PresetsOptions holds options for the presets command.
type PresetsOptions struct {
	IOStreams *iostreams.IOStreams

	Contract string
	Members  bool
}

// NewCmdPresets creates the presets command.
func NewCmdPresets(f *cmdutil.Factory, runF func(context.Context, *PresetsOptions) error) *cobra.Command {
	opts := &PresetsOptions{
		IOStreams: f.IOStreams,
	}

	cmd := &cobra.Command{
		Use:     "presets [CONTRACT]",
		Aliases: []string{"ls"},
		Short:   "List stub contracts and their presets",
		Long: `Lists every contract a scenario script can name, with the presets it
offers. Give a contract name to list only that contract.

With --members, the call-line members each contract understands are listed
instead.`,
		Example: `  # List all presets
  stubdemo presets

  # List presets for the HTTP client contract
  stubdemo presets httpclient

  # List the call lines the vehicle contract accepts
  stubdemo presets --members vehicle`,
		Args: cmdutil.RequiresMaxArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return script.ContractNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Contract = args[0]
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return presetsRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Members, "members", "m", false, "List call-line members instead of presets")

	return cmd
}

func presetsRun(_ context.Context, opts *PresetsOptions) error {
	names := script.ContractNames()
	if opts.Contract != "" {
		if _, err := script.LookupContract(opts.Contract); err != nil {
			return cmdutil.FlagErrorWrap(err)
		}
		names = []string{opts.Contract}
	}

	if opts.Members {
		tp := opts.IOStreams.NewTablePrinter("CONTRACT", "INTERFACE", "MEMBERS")
		for _, name := range names {
			c, _ := script.LookupContract(name)
			tp.AddRow(c.Name(), c.Interface(), strings.Join(c.Members(), ", "))
		}
		return tp.Render()
	}

	tp := opts.IOStreams.NewTablePrinter("CONTRACT", "PRESET", "EFFECT")
	for _, name := range names {
		c, _ := script.LookupContract(name)
		for _, p := range c.Presets() {
			tp.AddRow(c.Name(), p.Name, p.Description)
		}
	}
	return tp.Render()
}
