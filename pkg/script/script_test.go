// pkg/script/script_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp dir)
// PURPOSE: Action-to-shell rendering, quoting, command templates

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/fscode/pkg/errors"
	"github.com/arthur-debert/fscode/pkg/plan"
	"github.com/arthur-debert/fscode/pkg/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTemplates() script.Templates {
	return script.Templates{
		Move:     "mv",
		Copy:     "cp",
		Remove:   "rm",
		Create:   "touch",
		Link:     "ln -snT",
		Exchange: "mv --exchange",
	}
}

func TestLineRendering(t *testing.T) {
	e := script.NewEmitter(defaultTemplates())

	tests := []struct {
		name   string
		action plan.Action
		want   string
	}{
		{"move", plan.Action{Kind: plan.ActionMove, From: "a", To: "b"}, "mv a b"},
		{"copy", plan.Action{Kind: plan.ActionCopy, From: "a", To: "b"}, "cp a b"},
		{"delete", plan.Action{Kind: plan.ActionDelete, Path: "old"}, "rm old"},
		{"create", plan.Action{Kind: plan.ActionCreate, Path: "new.txt"}, "touch new.txt"},
		{"link target first", plan.Action{Kind: plan.ActionLink, Path: "lnk", Target: "dest"}, "ln -snT dest lnk"},
		{"exchange", plan.Action{Kind: plan.ActionExchange, From: "a", To: "b"}, "mv --exchange a b"},
		{"comment", plan.Action{Kind: plan.ActionComment, Text: "rename cycle: a -> b -> a"}, "# rename cycle: a -> b -> a"},
		{"space needs quotes", plan.Action{Kind: plan.ActionMove, From: "my file", To: "dst"}, "mv 'my file' dst"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Line(tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrefixPrependsEveryCommand(t *testing.T) {
	tpl := defaultTemplates()
	tpl.Prefix = "sudo -u files"
	e := script.NewEmitter(tpl)

	got, err := e.Line(plan.Action{Kind: plan.ActionMove, From: "a", To: "b"})
	require.NoError(t, err)
	assert.Equal(t, "sudo -u files mv a b", got)
}

func TestEmptyTemplateFails(t *testing.T) {
	tpl := defaultTemplates()
	tpl.Exchange = ""
	e := script.NewEmitter(tpl)

	_, err := e.Line(plan.Action{Kind: plan.ActionExchange, From: "a", To: "b"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptRender))
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain.txt", "plain.txt"},
		{"./__mv_tmp.1", "./__mv_tmp.1"},
		{"", "''"},
		{"with space", "'with space'"},
		{"dollar$sign", "'dollar$sign'"},
		{"it's", `'it'\''s'`},
		{"semi;colon", "'semi;colon'"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, script.Quote(tt.in), "Quote(%q)", tt.in)
	}
}

func TestRenderIncludesHeader(t *testing.T) {
	e := script.NewEmitter(defaultTemplates())

	text, err := e.Render([]plan.Action{
		{Kind: plan.ActionComment, Text: "rename cycle: a -> b -> a"},
		{Kind: plan.ActionMove, From: "b", To: "./__mv_tmp"},
		{Kind: plan.ActionMove, From: "a", To: "b"},
		{Kind: plan.ActionMove, From: "./__mv_tmp", To: "a"},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "#!/bin/sh\n"))
	assert.Contains(t, text, "set -e\n")
	assert.True(t, strings.HasSuffix(text, "mv ./__mv_tmp a\n"))
}

func TestRenderEmptyPlan(t *testing.T) {
	e := script.NewEmitter(defaultTemplates())

	text, err := e.Render(nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "#!/bin/sh\n"))
}

func TestWriteFileIsExecutable(t *testing.T) {
	e := script.NewEmitter(defaultTemplates())
	path := filepath.Join(t.TempDir(), "file_ops.sh")

	err := e.WriteFile(path, []plan.Action{{Kind: plan.ActionMove, From: "a", To: "b"}})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "script should be executable")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "mv a b\n")
}

func TestWriteFileBadPath(t *testing.T) {
	e := script.NewEmitter(defaultTemplates())

	err := e.WriteFile(filepath.Join(t.TempDir(), "missing", "x.sh"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptWrite))
}
