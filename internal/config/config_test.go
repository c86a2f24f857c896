package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadMissingFileYieldsDefaults ensures a bare checkout works without a settings file.
func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), DefaultConfigFilename))
	require.NoError(t, err)
	require.Empty(t, cfg.Python)
}

// TestLoadReadsInterpreter checks the python key is read and trimmed.
func TestLoadReadsInterpreter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte("python: \" python3.12 \"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "python3.12", cfg.Python)
}

// TestLoadRejectsBlankInterpreter ensures a present but blank python key is an error.
func TestLoadRejectsBlankInterpreter(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte("python: \"  \"\n"), 0o600))

	_, err := Load(path)
	require.ErrorIs(t, err, errInterpreterRequired)
}

// TestLoadRejectsUnknownKeys ensures typos in the settings file do not pass silently.
func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte("pyton: python3\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

// TestLoadEmptyFile ensures an empty settings file behaves like a missing one.
func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, cfg.Python)
}
