package bundler

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/signal-bundler/internal/domain/build"
)

// chdir switches the working directory for the test and restores it on
// cleanup; stands in for t.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}

// TestRunFailsWithoutEntryPoint ensures a missing script fails the run before any artifact appears.
func TestRunFailsWithoutEntryPoint(t *testing.T) {
	chdir(t, t.TempDir())

	opts := &Options{
		Target: build.LinuxTarget(),
		Debug:  true,
	}

	err := Run(context.Background(), opts)
	require.ErrorIs(t, err, errEntryPointMissing)

	// Nothing was produced and the marker was released.
	_, err = os.Stat(build.OutputDirName)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = os.Stat(MarkerFilename)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRunDebugMode checks the debug path creates the output directory without touching external tools.
func TestRunDebugMode(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(build.EntryPointFilename, []byte("print('hi')\n"), 0o600))

	opts := &Options{
		Target: build.WindowsTarget(),
		Debug:  true,
	}

	require.NoError(t, Run(context.Background(), opts))

	info, err := os.Stat(build.OutputDirName)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Re-running does not fail on the directory creation step.
	require.NoError(t, Run(context.Background(), opts))
}

// TestRunRejectsBadConfig ensures configuration problems surface before the marker is taken.
func TestRunRejectsBadConfig(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("broken.yaml", []byte("python: [oops\n"), 0o600))

	opts := &Options{
		ConfigPath: "broken.yaml",
		Target:     build.LinuxTarget(),
		Debug:      true,
	}

	require.Error(t, Run(context.Background(), opts))

	_, err := os.Stat(MarkerFilename)
	require.ErrorIs(t, err, os.ErrNotExist)
}
