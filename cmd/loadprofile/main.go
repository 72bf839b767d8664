// Command loadprofile computes synthetic half-hourly household demand
// profiles from the built-in archetype catalogue.
package main

import (
	"os"

	"github.com/katalvlaran/loadprofile/cmd/loadprofile/commands"
)

// Version information, set during build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := commands.NewRootCommand(commands.BuildInfo{Version: version, Commit: commit, Date: date})
	if err := commands.Execute(root); err != nil {
		os.Exit(1)
	}
}
