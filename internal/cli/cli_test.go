package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDumpTree(t *testing.T) {
	path := writeDoc(t, `<div id="a"><p>hi</p></div>`)

	out, err := execute(t, "dump", path)
	require.NoError(t, err)
	assert.Equal(t, "| <div> id=\"a\"\n|   <p>\n|     \"hi\"\n", out)
}

func TestDumpHTML(t *testing.T) {
	path := writeDoc(t, "<div>\n  <p>hi</p>\n</div>")

	out, err := execute(t, "dump", "--format", "html", "--ignore-empty-text", path)
	require.NoError(t, err)
	assert.Equal(t, "<div><p>hi</p></div>", out)
}

func TestDumpXML(t *testing.T) {
	path := writeDoc(t, `<a><b/></a>`)

	out, err := execute(t, "dump", "--format", "xml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<a>")
	assert.Contains(t, out, "<b/>")
}

func TestDumpUnknownFormat(t *testing.T) {
	path := writeDoc(t, `<a/>`)

	_, err := execute(t, "dump", "--format", "yaml", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestDumpParseError(t *testing.T) {
	path := writeDoc(t, `</div>`)

	_, err := execute(t, "dump", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmatched closing tag")
}

func TestDumpMissingFile(t *testing.T) {
	_, err := execute(t, "dump", filepath.Join(t.TempDir(), "nope.html"))
	assert.Error(t, err)
}
