// Package build defines the domain model of the bundler: the closed set of
// platform targets with their fixed PyInstaller argument lists, the shared
// build constants (entry point, output directory, required distributions) and
// the build manifest recorded next to finished artifacts.
package build
