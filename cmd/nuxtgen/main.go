package main

import (
	"github.com/goliatone/go-nuxtgen/internal/cli"
)

// Set via ldflags during build.
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
