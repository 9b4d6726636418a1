package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gog2006/DevOps-project1/internal/cli"
)

// Stamped at build time via -ldflags.
var (
	version   = "1.0.0"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bi := cli.BuildInfo{Version: version, Commit: commit, Date: buildDate}
	if err := cli.Execute(ctx, bi); err != nil {
		os.Exit(1)
	}
}
