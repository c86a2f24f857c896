// Package manifest implements persistence for the build Manifest.
//
// The FileRepository stores and loads the manifest as YAML next to the
// finished artifacts and exposes a Repository interface the bundler service
// depends on. Checksum helpers hash artifacts for manifest entries.
package manifest
