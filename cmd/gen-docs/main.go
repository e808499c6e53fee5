// gen-docs is a standalone binary for generating stubdemo CLI documentation
// in Markdown, man page and YAML formats, plus the scenario contract
// reference.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schmitthub/stubkit/internal/cmd/root"
	"github.com/schmitthub/stubkit/internal/cmdutil"
	"github.com/schmitthub/stubkit/internal/docs"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("gen-docs", pflag.ContinueOnError)

	var (
		flagDocPath   string
		flagMarkdown  bool
		flagManPage   bool
		flagYAML      bool
		flagContracts bool
		flagWebsite   bool
	)

	flags.StringVar(&flagDocPath, "doc-path", "", "Output directory for generated docs (required)")
	flags.BoolVar(&flagMarkdown, "markdown", false, "Generate Markdown documentation")
	flags.BoolVar(&flagManPage, "man-page", false, "Generate man pages")
	flags.BoolVar(&flagYAML, "yaml", false, "Generate YAML reference")
	flags.BoolVar(&flagContracts, "contracts", false, "Generate the scenario contract reference")
	flags.BoolVar(&flagWebsite, "website", false, "Add Jekyll front matter (requires --markdown)")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n\n%s", filepath.Base(args[0]), flags.FlagUsages())
	}

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if flagDocPath == "" {
		return fmt.Errorf("--doc-path is required")
	}
	if !flagMarkdown && !flagManPage && !flagYAML && !flagContracts {
		return fmt.Errorf("at least one format must be specified (--markdown, --man-page, --yaml, --contracts)")
	}
	if flagWebsite && !flagMarkdown {
		return fmt.Errorf("--website requires --markdown")
	}

	rootCmd := root.NewCmdRoot(&cmdutil.Factory{}, "", "")
	rootCmd.DisableAutoGenTag = true

	if flagMarkdown {
		dir, err := outputDir(flagDocPath, "markdown")
		if err != nil {
			return err
		}
		if flagWebsite {
			err = docs.GenMarkdownTreeCustom(rootCmd, dir, jekyllFrontMatter, jekyllLink)
		} else {
			err = docs.GenMarkdownTree(rootCmd, dir)
		}
		if err != nil {
			return fmt.Errorf("failed to generate Markdown documentation: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated Markdown documentation in %s\n", dir)
	}

	if flagManPage {
		dir, err := outputDir(flagDocPath, "man")
		if err != nil {
			return err
		}
		if err := docs.GenManTree(rootCmd, dir, nil); err != nil {
			return fmt.Errorf("failed to generate man pages: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated man pages in %s\n", dir)
	}

	if flagYAML {
		dir, err := outputDir(flagDocPath, "yaml")
		if err != nil {
			return err
		}
		if err := docs.GenYamlTree(rootCmd, dir); err != nil {
			return fmt.Errorf("failed to generate YAML documentation: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated YAML documentation in %s\n", dir)
	}

	if flagContracts {
		if err := os.MkdirAll(flagDocPath, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(flagDocPath, "contracts.md")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		if err := docs.GenContractReference(f); err != nil {
			return fmt.Errorf("failed to generate contract reference: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated contract reference in %s\n", path)
	}

	return nil
}

func outputDir(base, format string) (string, error) {
	dir := filepath.Join(base, format)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", format, err)
	}
	return dir, nil
}

// jekyllFrontMatter returns Jekyll front matter for a command page.
func jekyllFrontMatter(cmdPath string) string {
	// "stubdemo run" -> "/cli/stubdemo/run/"
	permalink := "/cli/" + strings.ReplaceAll(cmdPath, " ", "/") + "/"

	return fmt.Sprintf(`---
layout: manual
permalink: %s
title: %s
---

`, permalink, cmdPath)
}

// jekyllLink links to a command page's permalink.
func jekyllLink(cmdPath string) string {
	return "/cli/" + strings.ReplaceAll(cmdPath, " ", "/") + "/"
}
