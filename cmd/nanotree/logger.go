package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/nanotree/nanotree/log"
)

// cliLogger is a minimal log.Logger that writes colored lines to stderr,
// gated by --debug for Debug-level messages.
type cliLogger struct {
	debug bool
}

var _ log.Logger = cliLogger{}

func (l cliLogger) Debug(msg string, kv ...any) {
	if !l.debug {
		return
	}
	color.New(color.FgCyan).Fprintf(os.Stderr, "debug: %s %s\n", msg, fmt.Sprint(kv...))
}

func (l cliLogger) Info(msg string, kv ...any) {
	color.New(color.FgBlue).Fprintf(os.Stderr, "info: %s %s\n", msg, fmt.Sprint(kv...))
}

func (l cliLogger) Warn(msg string, kv ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "warn: %s %s\n", msg, fmt.Sprint(kv...))
}

func (l cliLogger) Error(msg string, kv ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "error: %s %s\n", msg, fmt.Sprint(kv...))
}
