package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A config file with a syntax error makes app.NewApp panic during the
	// loading phase.
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "Crab.hcl")
	err := os.WriteFile(configPath, []byte("common {\n  binned =\n"), 0o600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-workdir", tempDir, "-config", configPath, "Crab"}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	assert.Contains(t, runErr.Error(), "application startup panicked")
	assert.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" flag makes cli.Parse report a clean exit.
	out := &bytes.Buffer{}

	err := run(out, []string{"-h"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:", "expected help text on the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InitWritesExampleConfig(t *testing.T) {
	// Not parallel: -init writes relative to the working directory.
	tempDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	out := &bytes.Buffer{}

	runErr := run(out, []string{"-init"})

	require.NoError(t, runErr)
	assert.FileExists(t, filepath.Join(tempDir, "example.hcl"))
	assert.Contains(t, out.String(), "Wrote example config")

	// A second init must not clobber the file.
	runErr = run(out, []string{"-init"})
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "already exists")
}
