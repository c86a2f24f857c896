package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/signal-bundler/internal/config"
	"github.com/oshokin/signal-bundler/internal/domain/build"
	"github.com/oshokin/signal-bundler/internal/logger"
	"github.com/oshokin/signal-bundler/internal/service/bundler"
	"github.com/oshokin/signal-bundler/internal/service/python"
	"github.com/oshokin/signal-bundler/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// debug controls whether external tools are invoked or only logged.
	debug bool

	// rootCmd represents the base command producing the Windows executable.
	rootCmd = &cobra.Command{
		Use:   "signal-bundler-windows",
		Short: "Bundle the signal sampling experiment into a Windows executable.",
		Long: `Bundles signal_sampling_experiment.py into a standalone Windows executable
with PyInstaller.

The build takes no arguments: the entry point, hidden imports and the output
name are fixed. PyInstaller and Pillow are installed into the active Python
environment first when missing, then PyInstaller runs in single-file windowed
mode. The finished executable is written to
dist/SignalSamplingExperiment_Windows.exe.

When hosted on Linux, point the python setting in the configuration file at a
Windows interpreter (for example one hosted by wine) so PyInstaller produces
a Windows binary.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &bundler.Options{
				ConfigPath: configPath,
				Target:     build.WindowsTarget(),
				Debug:      debug,
			}

			return bundler.Run(ctx, options)
		},
	}
)

// Execute runs the signal-bundler-windows CLI. On failure the process exits
// with the external tool's own exit code when one exists.
func Execute() {
	logger.SetLevelFromEnvironment(logger.LoggingLevelEnvironmentVariable)
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(python.ExitCode(err, 1))
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")

	// Hidden debug flag to log the packaging command instead of running it.
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "log the packaging command instead of running it")

	err := rootCmd.Flags().MarkHidden("debug")
	if err != nil {
		panic(err)
	}
}
