package main

import "github.com/oshokin/signal-bundler/cmd/signal-bundler-windows/cmd"

func main() {
	cmd.Execute()
}
