//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyContext returns a context canceled on Ctrl-C or SIGTERM so that a
// pending render stops and the browser is shut down before exit.
// Call stop() to restore default signal handling.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
