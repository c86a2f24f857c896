package build

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPackagerArgs verifies the fixed argument lists of both platform variants.
func TestPackagerArgs(t *testing.T) {
	t.Parallel()

	linuxArgs := LinuxTarget().PackagerArgs()
	require.Equal(t, []string{
		"--onefile",
		"--hidden-import", "PIL._tkinter_finder",
		"--collect-all", "PIL",
		"--hidden-import", "tkinter",
		"--noconsole",
		"--name=SignalSamplingExperiment",
		"--icon", "NONE",
		"signal_sampling_experiment.py",
	}, linuxArgs)

	windowsArgs := WindowsTarget().PackagerArgs()
	require.Equal(t, []string{
		"--onefile",
		"--hidden-import", "PIL._tkinter_finder",
		"--collect-all", "PIL",
		"--hidden-import", "tkinter",
		"--windowed",
		"--name=SignalSamplingExperiment_Windows",
		"--icon", "NONE",
		"signal_sampling_experiment.py",
	}, windowsArgs)
}

// TestHiddenImportsAreDeclared ensures every hidden import is declared behind its flag in both variants.
func TestHiddenImportsAreDeclared(t *testing.T) {
	t.Parallel()

	for _, target := range []Target{LinuxTarget(), WindowsTarget()} {
		args := target.PackagerArgs()

		for _, name := range HiddenImports() {
			found := false

			for i, arg := range args[:len(args)-1] {
				if arg == "--hidden-import" && args[i+1] == name {
					found = true
				}
			}

			require.True(t, found, "hidden import %s is not declared for target %s", name, target.Name)
		}
	}
}

// TestEntryPointIsLastArgument ensures the script path closes the argument list for both variants.
func TestEntryPointIsLastArgument(t *testing.T) {
	t.Parallel()

	for _, target := range []Target{LinuxTarget(), WindowsTarget()} {
		args := target.PackagerArgs()
		require.Equal(t, EntryPointFilename, args[len(args)-1])
	}
}

// TestArtifactNaming checks the platform suffix rules and output paths.
func TestArtifactNaming(t *testing.T) {
	t.Parallel()

	linux := LinuxTarget()
	require.Equal(t, "SignalSamplingExperiment", linux.ArtifactName())
	require.Equal(t, filepath.Join(OutputDirName, "SignalSamplingExperiment"), linux.ArtifactPath())

	windows := WindowsTarget()
	require.Equal(t, "SignalSamplingExperiment_Windows.exe", windows.ArtifactName())
	require.Equal(t, filepath.Join(OutputDirName, "SignalSamplingExperiment_Windows.exe"), windows.ArtifactPath())
}
