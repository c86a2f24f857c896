package manifest

import (
	"context"
	"crypto/sha512"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/signal-bundler/internal/domain/build"
)

// TestLoadMissingFile ensures a missing manifest file maps to ErrNotFound.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), DefaultFilename))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

// TestSaveLoadRoundtrip ensures the manifest is persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	repo := NewFileRepository(path)

	manifest := build.NewManifest()
	manifest.RecordArtifact(build.WindowsTarget(), "checksum", time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Save(context.Background(), manifest))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, manifest.VersionNumber, loaded.VersionNumber)
	require.Equal(t, manifest.BuiltAt, loaded.BuiltAt)
	require.Equal(t, manifest.Files, loaded.Files)
	require.Equal(t, manifest.Targets, loaded.Targets)
}

// TestSaveNilManifest ensures a nil manifest is rejected.
func TestSaveNilManifest(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), DefaultFilename))
	require.Error(t, repo.Save(context.Background(), nil))
}

// TestFileChecksum verifies the checksum helper against a direct SHA-512 computation.
func TestFileChecksum(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "artifact.bin")
	contents := []byte("artifact-contents")
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	checksum, err := FileChecksum(path)
	require.NoError(t, err)

	expected := sha512.Sum512(contents)
	require.Equal(t, base64.StdEncoding.EncodeToString(expected[:]), checksum)
}

// TestFileChecksumMissingFile ensures a missing artifact surfaces the read error.
func TestFileChecksumMissingFile(t *testing.T) {
	t.Parallel()

	_, err := FileChecksum(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
