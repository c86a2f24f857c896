// Package python wraps the two external collaborators of the build: the
// package installer (pip) and the packaging tool, both invoked as modules of
// a configured Python interpreter. Child output is streamed through with a
// ">> " prefix and exit statuses propagate unmodified.
package python
