package main

import (
	"github.com/nofrixion/moneymoov-go/cmd"
)

var (
	// version of the binary, overridden at build time
	version = "dev"
	// commit hash of the build
	commit = "unknown"
	// buildTime of the binary
	buildTime = "unknown"
)

func main() {
	cmd.Execute(version, commit, buildTime)
}
