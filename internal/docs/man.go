package docs

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ManHeader is the metadata on a man page's title line.
type ManHeader struct {
	Section string
	Date    *time.Time
	Source  string
	Manual  string
}

func defaultManHeader() *ManHeader {
	return &ManHeader{Section: "1", Source: "Stubdemo", Manual: "Stubdemo Manual"}
}

// GenManTree writes one man page per command into dir, named like
// stubdemo-run.1. A nil header uses section 1.
func GenManTree(cmd *cobra.Command, dir string, header *ManHeader) error {
	if header == nil {
		header = defaultManHeader()
	}
	if header.Section == "" {
		header.Section = "1"
	}
	name := func(c *cobra.Command) string { return basename(c, "-") + "." + header.Section }
	return genTree(cmd, dir, name, func(c *cobra.Command, w io.Writer) error {
		return GenMan(c, header, w)
	})
}

// GenMan renders the man page for a single command.
func GenMan(cmd *cobra.Command, header *ManHeader, w io.Writer) error {
	if header == nil {
		header = defaultManHeader()
	}
	_, err := w.Write(md2man.Render(manMarkdown(cmd, header)))
	return err
}

// manMarkdown builds the md2man source: a title block followed by
// upper-case sections.
func manMarkdown(cmd *cobra.Command, header *ManHeader) []byte {
	prepare(cmd)
	section := header.Section
	if section == "" {
		section = "1"
	}

	var buf bytes.Buffer
	date := ""
	if header.Date != nil {
		date = header.Date.Format("Jan 2006")
	}
	fmt.Fprintf(&buf, "%% %s(%s) %s | %s\n\n",
		strings.ToUpper(basename(cmd, "-")), section, date, header.Manual)

	fmt.Fprintf(&buf, "# NAME\n%s \\- %s\n\n", cmd.CommandPath(), cmd.Short)

	buf.WriteString("# SYNOPSIS\n")
	fmt.Fprintf(&buf, "**%s**", cmd.CommandPath())
	if cmd.NonInheritedFlags().HasAvailableFlags() {
		buf.WriteString(" [OPTIONS]")
	}
	if cmd.HasAvailableSubCommands() {
		buf.WriteString(" COMMAND")
	} else if args := useArgs(cmd); args != "" {
		buf.WriteString(" " + args)
	}
	buf.WriteString("\n\n")

	if cmd.Long != "" {
		fmt.Fprintf(&buf, "# DESCRIPTION\n%s\n\n", cmd.Long)
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	local, inherited := cmd.NonInheritedFlags(), cmd.InheritedFlags()
	if local.HasAvailableFlags() || inherited.HasAvailableFlags() {
		buf.WriteString("# OPTIONS\n")
		manFlags(&buf, local)
		manFlags(&buf, inherited)
	}

	if cmd.Example != "" {
		fmt.Fprintf(&buf, "# EXAMPLES\n```\n%s\n```\n\n", cmd.Example)
	}

	if refs := seeAlso(cmd, section); len(refs) > 0 {
		fmt.Fprintf(&buf, "# SEE ALSO\n%s\n", strings.Join(refs, ", "))
	}

	return buf.Bytes()
}

// useArgs returns the argument part of cmd.Use, e.g. "SCRIPT".
func useArgs(cmd *cobra.Command) string {
	_, args, _ := strings.Cut(cmd.Use, " ")
	return args
}

func manFlags(buf *bytes.Buffer, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		if f.Shorthand != "" {
			fmt.Fprintf(buf, "**-%s**, ", f.Shorthand)
		}
		fmt.Fprintf(buf, "**--%s**", f.Name)
		if t := f.Value.Type(); t != "bool" {
			fmt.Fprintf(buf, " <%s>", t)
		}
		buf.WriteString("\n: " + f.Usage)
		switch f.DefValue {
		case "", "false", "0", "[]":
		default:
			fmt.Fprintf(buf, " (default: %s)", f.DefValue)
		}
		buf.WriteString("\n\n")
	})
}

// seeAlso lists the parent, siblings and children of cmd as man references.
func seeAlso(cmd *cobra.Command, section string) []string {
	ref := func(c *cobra.Command) string {
		return fmt.Sprintf("**%s(%s)**", basename(c, "-"), section)
	}
	var refs []string
	if cmd.HasParent() {
		refs = append(refs, ref(cmd.Parent()))
		for _, s := range visibleCommands(cmd.Parent()) {
			if s != cmd {
				refs = append(refs, ref(s))
			}
		}
	}
	for _, c := range visibleCommands(cmd) {
		refs = append(refs, ref(c))
	}
	return refs
}
