package logging_test

import (
	"testing"

	"github.com/arthur-debert/fscode/pkg/logging"
	"github.com/arthur-debert/fscode/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	t.Setenv(paths.EnvStateDir, t.TempDir())

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestGetLoggerDoesNotPanic(t *testing.T) {
	logger := logging.GetLogger("plan.parser")
	logger.Debug().Msg("component logger works")
}

func TestWithFields(t *testing.T) {
	logger := logging.WithFields(map[string]interface{}{
		"policy": "detour",
		"cycles": 2,
	})
	logger.Debug().Msg("fields logger works")
}
