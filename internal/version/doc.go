// Package version exposes build metadata for the bundler binaries.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds.
// Short feeds the version field of the build manifest; Full renders the
// output of the version subcommand.
package version
