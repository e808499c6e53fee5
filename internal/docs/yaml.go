package docs

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// CommandDoc is the YAML reference for one command.
type CommandDoc struct {
	Name        string       `yaml:"name"`
	Synopsis    string       `yaml:"synopsis,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Usage       string       `yaml:"usage,omitempty"`
	Aliases     []string     `yaml:"aliases,omitempty"`
	Options     []OptionDoc  `yaml:"options,omitempty"`
	Global      []OptionDoc  `yaml:"global_options,omitempty"`
	Commands    []CommandDoc `yaml:"commands,omitempty"`
	Examples    string       `yaml:"examples,omitempty"`
}

// OptionDoc is the YAML reference for one flag.
type OptionDoc struct {
	Name      string `yaml:"name"`
	Shorthand string `yaml:"shorthand,omitempty"`
	Default   string `yaml:"default,omitempty"`
	Type      string `yaml:"type"`
	Usage     string `yaml:"usage"`
}

// GenYamlTree writes one YAML file per command into dir.
func GenYamlTree(cmd *cobra.Command, dir string) error {
	name := func(c *cobra.Command) string { return basename(c, "_") + ".yaml" }
	return genTree(cmd, dir, name, GenYaml)
}

// GenYaml writes the YAML reference for a single command.
func GenYaml(cmd *cobra.Command, w io.Writer) error {
	prepare(cmd)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(commandDoc(cmd)); err != nil {
		return err
	}
	return enc.Close()
}

func commandDoc(cmd *cobra.Command) CommandDoc {
	doc := CommandDoc{
		Name:        cmd.CommandPath(),
		Synopsis:    cmd.Short,
		Description: cmd.Long,
		Aliases:     cmd.Aliases,
		Options:     optionDocs(cmd.NonInheritedFlags()),
		Global:      optionDocs(cmd.InheritedFlags()),
		Examples:    cmd.Example,
	}
	if cmd.Runnable() {
		doc.Usage = cmd.UseLine()
	}
	for _, c := range visibleCommands(cmd) {
		doc.Commands = append(doc.Commands, CommandDoc{Name: c.Name(), Synopsis: c.Short})
	}
	return doc
}

// optionDocs lists visible flags in the FlagSet's sorted order.
func optionDocs(flags *pflag.FlagSet) []OptionDoc {
	var opts []OptionDoc
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		opt := OptionDoc{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Type:      f.Value.Type(),
			Usage:     f.Usage,
		}
		switch f.DefValue {
		case "", "false", "0", "[]":
		default:
			opt.Default = f.DefValue
		}
		opts = append(opts, opt)
	})
	return opts
}
