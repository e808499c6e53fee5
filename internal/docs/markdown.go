package docs

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// LinkFunc maps a command path such as "stubdemo run" to a link target.
type LinkFunc func(cmdPath string) string

// MarkdownLink links to the file GenMarkdownTree writes for cmdPath.
func MarkdownLink(cmdPath string) string {
	return strings.ReplaceAll(cmdPath, " ", "_") + ".md"
}

// GenMarkdownTree writes one Markdown file per command into dir.
func GenMarkdownTree(cmd *cobra.Command, dir string) error {
	return GenMarkdownTreeCustom(cmd, dir, nil, MarkdownLink)
}

// GenMarkdownTreeCustom is GenMarkdownTree with front matter and link
// control. frontMatter may be nil; it receives the command path.
func GenMarkdownTreeCustom(cmd *cobra.Command, dir string, frontMatter func(cmdPath string) string, link LinkFunc) error {
	name := func(c *cobra.Command) string { return basename(c, "_") + ".md" }
	return genTree(cmd, dir, name, func(c *cobra.Command, w io.Writer) error {
		if frontMatter != nil {
			if _, err := io.WriteString(w, frontMatter(c.CommandPath())); err != nil {
				return err
			}
		}
		return GenMarkdown(c, w, link)
	})
}

// GenMarkdown writes the Markdown page for a single command.
func GenMarkdown(cmd *cobra.Command, w io.Writer, link LinkFunc) error {
	prepare(cmd)
	if link == nil {
		link = MarkdownLink
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "## %s\n\n", cmd.CommandPath())
	if cmd.Short != "" {
		buf.WriteString(cmd.Short + "\n\n")
	}

	if cmd.Long != "" || cmd.Runnable() {
		buf.WriteString("### Synopsis\n\n")
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		}
		if cmd.Runnable() {
			fmt.Fprintf(&buf, "```\n%s\n```\n\n", cmd.UseLine())
		}
	}

	if len(cmd.Aliases) > 0 {
		buf.WriteString("### Aliases\n\n")
		names := append([]string{cmd.Name()}, cmd.Aliases...)
		buf.WriteString("`" + strings.Join(names, "`, `") + "`\n\n")
	}

	if cmd.Example != "" {
		fmt.Fprintf(&buf, "### Examples\n\n```\n%s\n```\n\n", cmd.Example)
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("### Commands\n\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "* [%s](%s) - %s\n", c.CommandPath(), link(c.CommandPath()), c.Short)
		}
		buf.WriteString("\n")
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		fmt.Fprintf(&buf, "### Options\n\n```\n%s```\n\n", flags.FlagUsages())
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		fmt.Fprintf(&buf, "### Global options\n\n```\n%s```\n\n", flags.FlagUsages())
	}

	if cmd.HasParent() {
		p := cmd.Parent()
		fmt.Fprintf(&buf, "### See also\n\n* [%s](%s) - %s\n", p.CommandPath(), link(p.CommandPath()), p.Short)
	}

	_, err := buf.WriteTo(w)
	return err
}
