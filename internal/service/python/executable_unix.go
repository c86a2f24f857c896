//go:build !windows

package python

// DefaultExecutable is the interpreter command used when none is configured.
const DefaultExecutable = "python3"
