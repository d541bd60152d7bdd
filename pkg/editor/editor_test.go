// pkg/editor/editor_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem, /bin/sh style tools on PATH
// PURPOSE: Editor resolution precedence and edit round trips

package editor_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/fscode/pkg/editor"
	"github.com/arthur-debert/fscode/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrecedence(t *testing.T) {
	t.Setenv("VISUAL", "cat")
	t.Setenv("EDITOR", "true")

	words, err := editor.Resolve("sh -c")
	require.NoError(t, err)
	assert.Equal(t, []string{"sh", "-c"}, words)

	words, err = editor.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, words, "VISUAL wins when no override")

	t.Setenv("VISUAL", "")
	words, err = editor.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, words, "EDITOR is next")
}

func TestResolveMissingBinary(t *testing.T) {
	_, err := editor.Resolve("definitely-not-an-editor-xyz")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditorNotFound))
	assert.Equal(t, "definitely-not-an-editor-xyz", errors.GetErrorDetails(err)["editor"])
}

func TestEditPassesContentThrough(t *testing.T) {
	// "true" exits 0 without touching the file, so Edit returns what
	// it wrote.
	s, err := editor.NewSession("true", ".tsv")
	require.NoError(t, err)

	got, err := s.Edit("1\ta\n2\tb\n")
	require.NoError(t, err)
	assert.Equal(t, "1\ta\n2\tb\n", got)
}

func TestEditSeesModifications(t *testing.T) {
	// A fake editor on PATH that appends a row to the file it is given.
	dir := t.TempDir()
	helper := filepath.Join(dir, "append-row")
	script := "#!/bin/sh\nprintf '3\\tc\\n' >> \"$1\"\n"
	require.NoError(t, os.WriteFile(helper, []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	s, err := editor.NewSession("append-row", ".tsv")
	require.NoError(t, err)

	got, err := s.Edit("1\ta\n2\tb\n")
	require.NoError(t, err)
	assert.Equal(t, "1\ta\n2\tb\n3\tc\n", got)
}

func TestEditNonZeroExit(t *testing.T) {
	s, err := editor.NewSession("false", ".tsv")
	require.NoError(t, err)

	_, err = s.Edit("1\ta\n")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEditorExit))
	assert.False(t, strings.Contains(err.Error(), "panic"))
}
