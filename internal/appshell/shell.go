// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes shared by every tool.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags or bad input (DSL, structure, existing output)
	ExitIO       = 3 // failure while writing results
	ExitCanceled = 130
)

// RunFunc is the signature of every app entry point.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires signals and process exit around run.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == ExitOK {
		code = ExitCanceled
	}

	stop()
	os.Exit(code)
}
