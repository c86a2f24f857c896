package bundler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/signal-bundler/internal/logger"
)

const (
	// MarkerFilename marks that a build is running right now to avoid
	// parallel packaging runs over the same working directory.
	MarkerFilename = "signal-bundler-build-marker.bin"

	// markerLifetime is the period after which a build marker is considered
	// stale. Packaging runs take minutes, so the lifetime is generous.
	markerLifetime = 30 * time.Minute

	// Base executable names; platform helpers append extension when needed.
	baseLinuxBundlerExecutable   = "signal-bundler-linux"
	baseWindowsBundlerExecutable = "signal-bundler-windows"
)

// errBuildAlreadyRunning indicates that another build holds the marker.
var errBuildAlreadyRunning = errors.New("another build is running now")

// acquireBuildMarker creates the marker file guarding the working directory
// and returns a release function removing it. A fresh marker refuses the
// run; a stale one is reclaimed only when no bundler process is still alive.
func acquireBuildMarker(ctx context.Context) (func(), error) {
	logger.Info(ctx, "Checking for the presence of a build marker")

	fileInfo, err := os.Stat(MarkerFilename)

	switch {
	case err == nil:
		if time.Since(fileInfo.ModTime()) <= markerLifetime {
			return nil, errBuildAlreadyRunning
		}

		logger.Info(ctx, "The build marker is too old, attempting cleanup")

		if isAnotherBundlerRunning() {
			return nil, errBuildAlreadyRunning
		}

		if err = os.Remove(MarkerFilename); err != nil {
			return nil, fmt.Errorf("remove stale build marker: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read build marker: %w", err)
	}

	marker, err := os.Create(MarkerFilename)
	if err != nil {
		return nil, fmt.Errorf("create build marker: %w", err)
	}

	if err = marker.Close(); err != nil {
		return nil, fmt.Errorf("close build marker: %w", err)
	}

	release := func() {
		if removeErr := os.Remove(MarkerFilename); removeErr != nil {
			logger.Warnf(ctx, "Unable to remove build marker: %v", removeErr)
		}
	}

	return release, nil
}

// isAnotherBundlerRunning reports whether a bundler variant other than this
// process is still alive. Lookup failures count as running so a live build
// is never disturbed.
func isAnotherBundlerRunning() bool {
	processList, err := ps.Processes()
	if err != nil {
		return true
	}

	var (
		executables   = bundlerExecutables()
		thisProcessID = os.Getpid()
	)

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if _, found := executables[process.Executable()]; found {
			return true
		}
	}

	return false
}

// bundlerExecutables returns the variant executable names for this platform.
func bundlerExecutables() map[string]struct{} {
	extension := getExecutableExtension()

	return map[string]struct{}{
		baseLinuxBundlerExecutable + extension:   {},
		baseWindowsBundlerExecutable + extension: {},
	}
}

// getExecutableExtension returns ".exe" on Windows and "" elsewhere.
func getExecutableExtension() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return ".exe"
	}

	return ""
}
