package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullRun(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	result, shouldExit, err := Parse([]string{"Crab"}, &out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	require.NotNil(t, result.Config)
	assert.Equal(t, "Crab", result.Config.Basename)
	assert.Equal(t, ".", result.Config.WorkDir)
	assert.Empty(t, result.Config.Stages)
	assert.False(t, result.Config.DryRun)
	assert.Equal(t, "text", result.Config.LogFormat)
	assert.Equal(t, "info", result.Config.LogLevel)
}

func TestParse_AllOptions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	result, shouldExit, err := Parse([]string{
		"-config", "other.hcl",
		"-stage", "select, gti,select,",
		"-dry-run",
		"-workdir", "/data/crab",
		"-env-file", "tools.env",
		"-log-format", "JSON",
		"-log-level", "DEBUG",
		"Crab",
	}, &out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	cfg := result.Config
	assert.Equal(t, "other.hcl", cfg.ConfigPath)
	assert.Equal(t, []string{"select", "gti"}, cfg.Stages, "stages are trimmed and deduplicated")
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "/data/crab", cfg.WorkDir)
	assert.Equal(t, "tools.env", cfg.EnvFile)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_ConfigShorthand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	result, _, err := Parse([]string{"-c", "other.hcl", "Crab"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "other.hcl", result.Config.ConfigPath)
}

func TestParse_Init(t *testing.T) {
	t.Parallel()

	t.Run("default basename", func(t *testing.T) {
		var out bytes.Buffer
		result, shouldExit, err := Parse([]string{"-init"}, &out)

		require.NoError(t, err)
		assert.False(t, shouldExit)
		assert.True(t, result.Init)
		assert.Equal(t, "example", result.InitBase)
	})

	t.Run("explicit basename", func(t *testing.T) {
		var out bytes.Buffer
		result, _, err := Parse([]string{"-init", "Crab"}, &out)

		require.NoError(t, err)
		assert.True(t, result.Init)
		assert.Equal(t, "Crab", result.InitBase)
	})
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	result, shouldExit, err := Parse(nil, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, result)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "basename")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, shouldExit, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-bogus", "Crab"}, "flag provided but not defined"},
		{"too many basenames", []string{"Crab", "Vela"}, "expected one basename"},
		{"bad log format", []string{"-log-format", "xml", "Crab"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud", "Crab"}, "invalid log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tt.args, &out)

			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tt.wantMsg)
		})
	}
}
