//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// shutdownSignals holds the only signal Windows delivers to console programs.
var shutdownSignals = []os.Signal{os.Interrupt}

// notifyContext returns a context canceled on Ctrl-C.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
