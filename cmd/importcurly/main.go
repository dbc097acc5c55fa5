// Package main is the entry point for importcurly.
package main

import (
	"fmt"
	"os"

	"github.com/donaldgifford/importcurly/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(fmt.Sprintf("%s (%s) %s", version, commit, date)))
}
