// Package config defines build settings used by the bundler binaries and
// provides a helper to load them from YAML.
//
// The Config type holds the Python interpreter command. A missing settings
// file yields built-in defaults, keeping the binaries usable on a bare
// checkout.
package config
