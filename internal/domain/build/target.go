package build

import "path/filepath"

const (
	// EntryPointFilename is the Python script bundled into the executable.
	EntryPointFilename = "signal_sampling_experiment.py"

	// OutputDirName is the directory where finished executables are written.
	OutputDirName = "dist"

	// PackagerModule is the module name the packaging tool is invoked through.
	PackagerModule = "PyInstaller"

	// collectAllTarget names the library whose resources are bundled wholesale,
	// because the packaging tool's static analysis misses its data files.
	collectAllTarget = "PIL"

	// Hidden imports the packaging tool's static analyzer cannot detect.
	hiddenImportImagingTk = "PIL._tkinter_finder"
	hiddenImportToolkit   = "tkinter"

	// windowsArtifactSuffix is appended to executables built for Windows.
	windowsArtifactSuffix = ".exe"
)

// HiddenImports lists modules the packaging tool's static analyzer cannot
// detect and which must be declared explicitly.
func HiddenImports() []string {
	return []string{hiddenImportImagingTk, hiddenImportToolkit}
}

// RequiredDistributions lists the pip distributions a build needs installed:
// the packaging tool itself and the imaging library.
func RequiredDistributions() []string {
	return []string{"pyinstaller", "pillow"}
}

// Target describes one platform variant of the build.
// The argument list derived from it is fixed at authoring time;
// configuration cannot alter it.
type Target struct {
	// Name identifies the platform variant ("linux" or "windows").
	Name string
	// OutputName is the packaging tool's --name value for the executable.
	OutputName string
	// UIModeFlag suppresses the console window of the GUI payload.
	UIModeFlag string
	// ArtifactSuffix is appended to the finished executable name.
	ArtifactSuffix string
}

// LinuxTarget returns the variant producing the Linux executable.
func LinuxTarget() Target {
	return Target{
		Name:           "linux",
		OutputName:     "SignalSamplingExperiment",
		UIModeFlag:     "--noconsole",
		ArtifactSuffix: "",
	}
}

// WindowsTarget returns the variant producing the Windows executable.
func WindowsTarget() Target {
	return Target{
		Name:           "windows",
		OutputName:     "SignalSamplingExperiment_Windows",
		UIModeFlag:     "--windowed",
		ArtifactSuffix: windowsArtifactSuffix,
	}
}

// PackagerArgs returns the exact, ordered argument list passed to the
// packaging tool for this variant. The collect-all directive sits between
// the two hidden imports, matching the invocation the build was validated
// with. The entry-point path is always last.
func (t Target) PackagerArgs() []string {
	return []string{
		"--onefile",
		"--hidden-import", hiddenImportImagingTk,
		"--collect-all", collectAllTarget,
		"--hidden-import", hiddenImportToolkit,
		t.UIModeFlag,
		"--name=" + t.OutputName,
		"--icon", "NONE",
		EntryPointFilename,
	}
}

// ArtifactName returns the file name of the finished executable,
// with the ".exe" suffix for the Windows variant.
func (t Target) ArtifactName() string {
	return t.OutputName + t.ArtifactSuffix
}

// ArtifactPath returns the path of the finished executable under the
// output directory.
func (t Target) ArtifactPath() string {
	return filepath.Join(OutputDirName, t.ArtifactName())
}
