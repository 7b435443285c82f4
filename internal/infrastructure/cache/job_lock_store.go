package cache

import (
	"context"
	"time"
)

// JobLockStore provides named locks for single-flight job execution. A lock
// held by one holder cannot be acquired again until released or expired; the
// TTL guards against locks leaking when a holder dies mid-job.
type JobLockStore interface {
	// TryAcquire attempts to take the named lock. Returns false without
	// error when the lock is already held.
	TryAcquire(ctx context.Context, name string, ttl time.Duration) (bool, error)

	// Release releases the named lock
	Release(ctx context.Context, name string) error
}
