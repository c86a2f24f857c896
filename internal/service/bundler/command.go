package bundler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/signal-bundler/internal/config"
	"github.com/oshokin/signal-bundler/internal/domain/build"
	"github.com/oshokin/signal-bundler/internal/logger"
	"github.com/oshokin/signal-bundler/internal/repository/manifest"
	"github.com/oshokin/signal-bundler/internal/service/python"
)

// Options contains inputs for the bundler entry point.
type Options struct {
	// ConfigPath is an optional path to the settings YAML file.
	ConfigPath string
	// Target selects the platform variant to build.
	Target build.Target
	// Debug logs the packaging command instead of invoking external tools.
	Debug bool
}

// runner drives one build from dependency checks to the completion message.
// It is unexported—callers should use Run, which encapsulates setup.
type runner struct {
	// cfg holds the interpreter settings loaded from YAML.
	cfg *config.Config
	// target is the platform variant being built.
	target build.Target
	// python invokes the installer and the packaging tool.
	python *python.Runner
	// manifests persists the build manifest next to the artifacts.
	manifests manifest.Repository
	// debug suppresses external tool invocations.
	debug bool
}

// errEntryPointMissing indicates the fixed entry-point script is absent
// from the working directory.
var errEntryPointMissing = errors.New("entry-point script not found")

// outputDirPermissions is used when creating the output directory.
const outputDirPermissions os.FileMode = 0o755

// Run executes the build workflow for the selected target.
func Run(ctx context.Context, opts *Options) error {
	// The hidden debug switch makes this run verbose without touching the
	// global level other binaries share.
	if opts.Debug {
		ctx = logger.ToContext(ctx, logger.New(nil, logger.WithLevel(zapcore.DebugLevel)))
	}

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "signal-bundler")
	ctx = logger.WithKV(ctx, "target", opts.Target.Name)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger.DebugKV(ctx, "Loaded build settings", "config_path", opts.ConfigPath, "python", cfg.Python)

	release, err := acquireBuildMarker(ctx)
	if err != nil {
		return err
	}

	defer release()

	b := &runner{
		cfg:       cfg,
		target:    opts.Target,
		python:    python.NewRunner(cfg.Python),
		manifests: manifest.NewFileRepository(filepath.Join(build.OutputDirName, manifest.DefaultFilename)),
		debug:     opts.Debug,
	}

	if err = b.Run(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Bundler completed successfully")

	return nil
}

// Run steps through the linear build sequence for this runner instance:
// 1) Ensure the two build dependencies are installed.
// 2) Verify the entry-point script exists.
// 3) Invoke the packaging tool synchronously.
// 4) Ensure the output directory exists.
// 5) Record the artifact into the build manifest.
// 6) Report completion with the expected artifact path.
func (b *runner) Run(ctx context.Context) error {
	if err := b.ensureDependencies(ctx); err != nil {
		return fmt.Errorf("ensure build dependencies: %w", err)
	}

	if err := b.verifyEntryPoint(); err != nil {
		return err
	}

	if err := b.buildExecutable(ctx); err != nil {
		return err
	}

	if err := b.ensureOutputDir(ctx); err != nil {
		return fmt.Errorf("ensure output directory: %w", err)
	}

	b.recordBuild(ctx)
	b.reportCompletion(ctx)

	return nil
}

// ensureDependencies makes sure the packaging tool and the imaging library
// are present in the interpreter's environment.
func (b *runner) ensureDependencies(ctx context.Context) error {
	if b.debug {
		logger.Info(ctx, "Debug mode, skipping dependency installation")
		return nil
	}

	logger.InfoKV(ctx, "Ensuring build dependencies are installed",
		"interpreter", b.python.Command(), "distributions", build.RequiredDistributions())

	return b.python.EnsureDistributions(ctx, build.RequiredDistributions()...)
}

// verifyEntryPoint fails the run before any artifact is produced when the
// fixed entry-point script is absent.
func (b *runner) verifyEntryPoint() error {
	if _, err := os.Stat(build.EntryPointFilename); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", build.EntryPointFilename, errEntryPointMissing)
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", build.EntryPointFilename, err)
	}

	return nil
}

// buildExecutable invokes the packaging tool with the target's fixed
// argument list. The tool's exit status propagates to the caller unmodified.
func (b *runner) buildExecutable(ctx context.Context) error {
	args := append([]string{"-m", build.PackagerModule}, b.target.PackagerArgs()...)

	if b.debug {
		logger.InfoKV(ctx, "Debug mode, skipping the packaging tool",
			"command", b.python.Command(), "args", args)

		return nil
	}

	logger.InfoKV(ctx, "Running the packaging tool, this may take a few minutes",
		"command", b.python.Command(), "args", args)

	if err := b.python.Run(ctx, args...); err != nil {
		return fmt.Errorf("run %s: %w", build.PackagerModule, err)
	}

	return nil
}

// ensureOutputDir guarantees the output directory exists after the build.
// Creation is idempotent.
func (b *runner) ensureOutputDir(ctx context.Context) error {
	logger.InfoKV(ctx, "Ensuring output directory exists", "path", build.OutputDirName)

	return os.MkdirAll(build.OutputDirName, outputDirPermissions)
}

// recordBuild stores the artifact checksum into the shared build manifest.
// The artifact is already on disk at this point, so manifest problems only
// warn and never change the build's outcome.
func (b *runner) recordBuild(ctx context.Context) {
	if b.debug {
		return
	}

	artifactPath := b.target.ArtifactPath()

	checksum, err := manifest.FileChecksum(artifactPath)
	if err != nil {
		logger.WarnKV(ctx, "Skipping manifest record, artifact is not readable",
			"path", artifactPath, "error", err)

		return
	}

	record, err := b.manifests.Load(ctx)
	if errors.Is(err, manifest.ErrNotFound) {
		record = build.NewManifest()
	} else if err != nil {
		logger.WarnKV(ctx, "Skipping manifest record, manifest is not readable", "error", err)
		return
	}

	if previous := record.RecordArtifact(b.target, checksum, time.Now().UTC()); previous != "" {
		logger.InfoKV(ctx, "Replacing previous artifact in the build manifest", "previous", previous)
	}

	if err = b.manifests.Save(ctx, record); err != nil {
		logger.WarnKV(ctx, "Unable to save build manifest", "error", err)
		return
	}

	logger.InfoKV(ctx, "Recorded build into manifest", "artifact", b.target.ArtifactName())
}

// reportCompletion prints the user-facing completion line naming the
// expected artifact path and logs it.
func (b *runner) reportCompletion(ctx context.Context) {
	artifactPath := b.target.ArtifactPath()

	successPrinter := color.New(color.FgGreen)
	_, _ = successPrinter.Printf("Build finished! Executable is ready at %s\n", artifactPath)

	logger.InfoKV(ctx, "Build finished", "artifact", artifactPath)
}
