package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fscode/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestConfigDirOverride(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/tmp/fscode-conf")

	assert.Equal(t, "/tmp/fscode-conf", paths.ConfigDir())
	assert.Equal(t, filepath.Join("/tmp/fscode-conf", paths.ConfigFileName), paths.ConfigFile())
}

func TestStateDirOverride(t *testing.T) {
	t.Setenv(paths.EnvStateDir, "/tmp/fscode-state")

	assert.Equal(t, "/tmp/fscode-state", paths.StateDir())
	assert.Equal(t, filepath.Join("/tmp/fscode-state", paths.LogFileName), paths.LogFile())
}

func TestConfigDirExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv(paths.EnvConfigDir, "~/conf")

	assert.Equal(t, "/home/tester/conf", paths.ConfigDir())
}

func TestDefaultsEndWithAppDir(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvStateDir, "")

	assert.Equal(t, paths.AppDirName, filepath.Base(paths.ConfigDir()))
	assert.Equal(t, paths.AppDirName, filepath.Base(paths.StateDir()))
}
