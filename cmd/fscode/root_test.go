// cmd/fscode/root_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp dirs), sh on PATH
// PURPOSE: End-to-end command flow with a scripted editor

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate pins config and state to temp dirs so user machines never
// leak into tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("FSCODE_CONFIG_DIR", t.TempDir())
	t.Setenv("FSCODE_STATE_DIR", t.TempDir())
	t.Setenv("NO_COLOR", "1")
}

// fakeEditor installs a shell script on PATH that rewrites the table.
func fakeEditor(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	helper := filepath.Join(dir, "table-editor")
	require.NoError(t, os.WriteFile(helper, []byte("#!/bin/sh\n"+body), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return "table-editor"
}

func TestUnchangedTableNeedsNoOperations(t *testing.T) {
	isolate(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--editor", "true", "--dry-run", "a.txt", "b.txt"})

	require.NoError(t, cmd.Execute())
}

func TestAddedRowProducesScript(t *testing.T) {
	isolate(t)
	editorName := fakeEditor(t, `printf '0\tnew-file.txt\n' >> "$1"`)

	output := filepath.Join(t.TempDir(), "file_ops.sh")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--editor", editorName, "-o", output, "a.txt"})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "#!/bin/sh")
	assert.Contains(t, string(content), "touch new-file.txt")
}

func TestDryRunWritesNothing(t *testing.T) {
	isolate(t)
	editorName := fakeEditor(t, `printf '0\tnew-file.txt\n' >> "$1"`)

	output := filepath.Join(t.TempDir(), "file_ops.sh")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--editor", editorName, "--dry-run", "-o", output, "a.txt"})

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(output)
	assert.True(t, os.IsNotExist(err), "dry run must not write the script")
	assert.Contains(t, out.String(), "create")
	assert.Contains(t, out.String(), "new-file.txt")
}

func TestBadEditReportsParseError(t *testing.T) {
	isolate(t)
	editorName := fakeEditor(t, `printf 'not-a-number\toops\n' >> "$1"`)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--editor", editorName, "a.txt"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line")
}

func TestPositionalArgsAreAccepted(t *testing.T) {
	// The root command takes paths, not subcommands, so arbitrary
	// positionals must not be rejected as unknown commands.
	isolate(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--editor", "true", "--dry-run", "one.txt", "two.txt", "three.txt"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "unknown command")
}

func TestDuplicateInputPathsRejected(t *testing.T) {
	isolate(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--editor", "true", "a.txt", "b.txt", "a.txt"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate input path "a.txt"`)
}

func TestTopicsListsEmbeddedDocs(t *testing.T) {
	isolate(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"topics"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "plan-format")
	assert.Contains(t, out.String(), "cycles")
}

func TestConfigPrintsEffectiveTOML(t *testing.T) {
	isolate(t)
	t.Setenv("FSCODE_CYCLE_POLICY", "exchange")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `policy = 'exchange'`)
	assert.Contains(t, out.String(), "[commands]")
}
