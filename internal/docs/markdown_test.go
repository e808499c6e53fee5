package docs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenMarkdown_Root(t *testing.T) {
	root := newTestRootCmd()

	var buf bytes.Buffer
	require.NoError(t, GenMarkdown(root, &buf, nil))

	out := buf.String()
	assert.Contains(t, out, "## stubdemo\n")
	assert.Contains(t, out, "### Commands")
	assert.Contains(t, out, "* [stubdemo run](stubdemo_run.md) - Run a scenario script")
	assert.NotContains(t, out, "internal")
	assert.NotContains(t, out, "### See also")
}

func TestGenMarkdown_Leaf(t *testing.T) {
	root := newTestRootCmd()
	run, _, _ := root.Find([]string{"run"})

	var buf bytes.Buffer
	require.NoError(t, GenMarkdown(run, &buf, nil))

	out := buf.String()
	assert.Contains(t, out, "```\nstubdemo run SCRIPT [flags]\n```")
	assert.Contains(t, out, "### Examples")
	assert.Contains(t, out, "--fail-on-unstubbed")
	assert.Contains(t, out, "### Global options")
	assert.Contains(t, out, "--debug")
	assert.Contains(t, out, "* [stubdemo](stubdemo.md)")
}

func TestGenMarkdown_Aliases(t *testing.T) {
	root := newTestRootCmd()
	presets, _, _ := root.Find([]string{"presets"})

	var buf bytes.Buffer
	require.NoError(t, GenMarkdown(presets, &buf, nil))
	assert.Contains(t, buf.String(), "`presets`, `ls`")
}

func TestGenMarkdownTreeCustom(t *testing.T) {
	dir := t.TempDir()
	frontMatter := func(cmdPath string) string { return "---\ntitle: " + cmdPath + "\n---\n\n" }
	link := func(cmdPath string) string { return "/cli/" + MarkdownLink(cmdPath) }

	require.NoError(t, GenMarkdownTreeCustom(newTestRootCmd(), dir, frontMatter, link))

	for _, name := range []string{"stubdemo.md", "stubdemo_run.md", "stubdemo_presets.md"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.NoFileExists(t, filepath.Join(dir, "stubdemo_internal.md"))

	data, err := os.ReadFile(filepath.Join(dir, "stubdemo.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "---\ntitle: stubdemo\n---")
	assert.Contains(t, string(data), "(/cli/stubdemo_run.md)")
}
