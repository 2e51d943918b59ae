package main

import (
	"runtime"

	"github.com/bnema/clipfetch/internal/cli/cmd"
	"github.com/bnema/clipfetch/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Default: watch the clipboard
	cmd.Execute()
}
