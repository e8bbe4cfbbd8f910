package main

import (
	"fmt"
	"os"

	"github.com/stakeapi/stakeapi-go/internal/cmd"
)

// Version information set via ldflags during build, e.g.
// go build -ldflags="-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
