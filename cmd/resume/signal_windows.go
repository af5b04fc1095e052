//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext returns a context canceled on Ctrl-C so that a pending
// render stops and the browser is shut down before exit. SIGTERM does not
// exist on Windows. Call stop() to restore default signal handling.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
