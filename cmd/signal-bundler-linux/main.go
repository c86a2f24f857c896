package main

import "github.com/oshokin/signal-bundler/cmd/signal-bundler-linux/cmd"

func main() {
	cmd.Execute()
}
