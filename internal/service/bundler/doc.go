// Package bundler implements the build invoker: a linear sequence that
// ensures the Python build dependencies are present, invokes the packaging
// tool with the target's fixed argument list, guarantees the output
// directory, records the artifact into the build manifest and reports the
// expected artifact path. A marker file guards against concurrent builds
// sharing the same working directory.
package bundler
