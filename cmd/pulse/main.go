// Package main provides the entry point for the pulse CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/pulse/internal/cli"
	"github.com/mrz1836/pulse/internal/signal"
)

// Build information set via ldflags.
var (
	version = "" //nolint:gochecknoglobals // set at build time
	commit  = "" //nolint:gochecknoglobals // set at build time
	date    = "" //nolint:gochecknoglobals // set at build time
)

func main() {
	// Ctrl+C cancels the context so prompts and hooks unwind cleanly.
	handler := signal.NewHandler(context.Background())
	defer handler.Stop()

	err := cli.Execute(handler.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	code := cli.ExitCodeForError(err)
	select {
	case <-handler.Interrupted():
		code = cli.ExitInterrupt
	default:
	}
	os.Exit(code)
}
