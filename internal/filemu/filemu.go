// Package filemu implements advisory file locks shared between concurrent
// invocations of the CLI.
package filemu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/jpillora/backoff"
)

// Unlocker releases a lock.
type Unlocker interface {
	Unlock() error
}

const (
	// DefaultTimeout bounds how long acquiring a lock may take when the
	// caller's context carries no deadline.
	DefaultTimeout = time.Second

	minPollInterval = 10 * time.Millisecond
	maxPollInterval = 100 * time.Millisecond
)

// ErrTimeout is returned when a lock could not be acquired in time.
var ErrTimeout = errors.New("timed out acquiring file lock")

// Lock acquires an exclusive lock on the named file.
func Lock(ctx context.Context, path string) (Unlocker, error) {
	return acquire(ctx, path, true)
}

// RLock acquires a shared lock on the named file.
func RLock(ctx context.Context, path string) (Unlocker, error) {
	return acquire(ctx, path, false)
}

func acquire(ctx context.Context, path string, exclusive bool) (Unlocker, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	fl := flock.New(path)

	try := fl.TryRLock
	if exclusive {
		try = fl.TryLock
	}

	b := &backoff.Backoff{
		Min:    minPollInterval,
		Max:    maxPollInterval,
		Factor: 2,
		Jitter: true,
	}

	for {
		switch locked, err := try(); {
		case err != nil:
			return nil, fmt.Errorf("failed locking %s: %w", path, err)
		case locked:
			return fl, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ErrTimeout, path)
		case <-time.After(b.Duration()):
		}
	}
}
