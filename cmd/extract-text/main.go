package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/image-text-extract/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Interrupts end the wait on a long-running recognition.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, cli.WithBuildInfo(cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}))

	stop()
	os.Exit(code)
}
