package python

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/oshokin/signal-bundler/internal/logger"
)

const (
	// pipModule is the installer module name.
	pipModule = "pip"

	// outputPrefix marks streamed child process output in our own output.
	outputPrefix = ">> "
)

// Runner invokes the configured Python interpreter for installer and
// packaging tool runs.
type Runner struct {
	// command is the interpreter executable to invoke.
	command string
	// output receives the streamed stdout and stderr of child processes.
	output io.Writer
}

// Option configures runner behaviour.
type Option func(*Runner)

// WithOutput redirects the streamed child process output.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.output = w
		}
	}
}

// NewRunner returns a runner for the provided interpreter command.
// An empty command falls back to the platform default.
func NewRunner(command string, opts ...Option) *Runner {
	r := &Runner{
		command: command,
		output:  os.Stdout,
	}

	if r.command == "" {
		r.command = DefaultExecutable
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Command returns the interpreter command the runner invokes.
func (r *Runner) Command() string {
	return r.command
}

// Run executes the interpreter with the provided arguments, streaming its
// stdout and stderr through. The child's exit status propagates unmodified
// in the returned error.
func (r *Runner) Run(ctx context.Context, args ...string) error {
	//nolint:gosec // The command and arguments are fixed at authoring time.
	cmd := exec.CommandContext(ctx, r.command, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("open stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("open stderr pipe: %w", err)
	}

	if err = cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", r.command, err)
	}

	var group errgroup.Group

	group.Go(func() error { return consumePipe(stdout, r.output) })
	group.Go(func() error { return consumePipe(stderr, r.output) })

	if err = group.Wait(); err != nil {
		_ = cmd.Wait()

		return fmt.Errorf("consume child output: %w", err)
	}

	return cmd.Wait()
}

// HasDistribution reports whether the installer already knows the named
// distribution. The probe is quiet; only its exit status matters.
func (r *Runner) HasDistribution(ctx context.Context, name string) (bool, error) {
	//nolint:gosec // The probed names come from a fixed list.
	cmd := exec.CommandContext(ctx, r.command, "-m", pipModule, "show", "-q", name)

	err := cmd.Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}

	return false, fmt.Errorf("probe distribution %s: %w", name, err)
}

// Install installs the named distributions with the installer module.
func (r *Runner) Install(ctx context.Context, names ...string) error {
	args := append([]string{"-m", pipModule, "install"}, names...)

	return r.Run(ctx, args...)
}

// EnsureDistributions installs the distributions the installer does not know
// yet. Re-running is a no-op when everything is already present.
func (r *Runner) EnsureDistributions(ctx context.Context, names ...string) error {
	missing := make([]string, 0, len(names))

	for _, name := range names {
		installed, err := r.HasDistribution(ctx, name)
		if err != nil {
			return err
		}

		if installed {
			logger.InfoKV(ctx, "Distribution is already installed", "name", name)
			continue
		}

		missing = append(missing, name)
	}

	if len(missing) == 0 {
		return nil
	}

	logger.InfoKV(ctx, "Installing missing distributions", "names", missing)

	if err := r.Install(ctx, missing...); err != nil {
		return fmt.Errorf("install %s: %w", strings.Join(missing, ", "), err)
	}

	return nil
}

// ExitCode extracts the child process exit code carried by err.
// It returns fallback when err carries no exit status.
func ExitCode(err error, fallback int) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return fallback
}

// consumePipe copies child output to the runner's writer line by line,
// prefixed so it is distinguishable from our own messages.
func consumePipe(pipe io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(pipe)
	for scanner.Scan() {
		if _, err := fmt.Fprintf(output, "%s%s\n", outputPrefix, scanner.Text()); err != nil {
			return err
		}
	}

	return scanner.Err()
}
