package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fscode/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, PolicyDetour, cfg.Cycle.Policy)
	assert.Equal(t, "./__mv_tmp", cfg.Cycle.Template)
	assert.True(t, cfg.Cycle.Rotate)
	assert.True(t, cfg.Cycle.Fallback)
	assert.Equal(t, "mv", cfg.Commands.Move)
	assert.Equal(t, "cp", cfg.Commands.Copy)
	assert.Equal(t, "rm", cfg.Commands.Remove)
	assert.Equal(t, "touch", cfg.Commands.Create)
	assert.Equal(t, "ln -snT", cfg.Commands.Link)
	assert.Equal(t, "mv --exchange", cfg.Commands.Exchange)
	assert.Equal(t, "file_ops.sh", cfg.Output)
	assert.Equal(t, ".tsv", cfg.Suffix)
}

func TestLoadUserFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "fscode.toml")
	content := `
output = "renames.sh"

[cycle]
policy = "exchange"

[commands]
move = "git mv"
`
	require.NoError(t, os.WriteFile(userPath, []byte(content), 0644))

	cfg, err := loadFrom(userPath)
	require.NoError(t, err)

	assert.Equal(t, "renames.sh", cfg.Output)
	assert.Equal(t, PolicyExchange, cfg.Cycle.Policy)
	assert.Equal(t, "git mv", cfg.Commands.Move)
	// Untouched keys keep their defaults
	assert.Equal(t, "cp", cfg.Commands.Copy)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("FSCODE_CYCLE_POLICY", "exchange")
	t.Setenv("FSCODE_OUTPUT", "env.sh")

	cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, PolicyExchange, cfg.Cycle.Policy)
	assert.Equal(t, "env.sh", cfg.Output)
}

func TestValidateRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("FSCODE_CYCLE_POLICY", "yolo")

	_, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestValidateRejectsEmptyCommand(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "fscode.toml")
	require.NoError(t, os.WriteFile(userPath, []byte("[commands]\nmove = \"\"\n"), 0644))

	_, err := loadFrom(userPath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestEffectiveTOMLRoundTrips(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	out, err := EffectiveTOML(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "policy = 'detour'")
	assert.Contains(t, out, "[commands]")
}
