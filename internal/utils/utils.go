package utils

import (
	"context"
	"os/signal"
	"syscall"
)

// SetupContext derives the process context, canceled on SIGTERM or
// SIGINT. udev sends SIGTERM when a rule times out; cancellation lets a
// run hung on a dead NFS mount or misbehaving /proc stop cleanly instead
// of being killed mid-candidate.
func SetupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
}
