package sync

import (
	"context"
	"time"
)

// Job names used with the task queue. The queue guarantees single-flight per
// name, so concurrent triggers of the same sync type collapse into one run.
const (
	JobProductSync = "product-sync"
	JobPayoutSync  = "payout-sync"
)

// Status classifies an audit log entry.
type Status string

const (
	// StatusSuccess marks a completed sync pass
	StatusSuccess Status = "Success"
	// StatusError marks a failed operation
	StatusError Status = "Error"
	// StatusPayoutError marks a failed payout listing or reconciliation step
	StatusPayoutError Status = "Payout Error"
	// StatusTransactionsError marks a failed payout transactions fetch
	StatusTransactionsError Status = "Payout Transactions Error"
)

// SyncLogger records sync outcomes for auditing. Implementations are
// best-effort and must never fail the caller.
type SyncLogger interface {
	// Record writes one audit entry. err may be nil for informational entries.
	Record(ctx context.Context, status Status, message string, err error)
}

// TaskQueue runs sync jobs in the background. Enqueue is fire-and-forget:
// the returned bool only reports whether the job was accepted, never the
// outcome of the job itself.
type TaskQueue interface {
	// Enqueue submits a named job. Returns false when the queue is stopped,
	// full, or a job with the same name is already queued or running.
	Enqueue(name string, job func(ctx context.Context)) bool
}

// SettingsStore persists the payout sync cursor.
type SettingsStore interface {
	// LastPayoutSync returns the timestamp of the last completed payout
	// pass, or nil when no pass has completed yet.
	LastPayoutSync(ctx context.Context) (*time.Time, error)

	// SetLastPayoutSync advances the cursor.
	SetLastPayoutSync(ctx context.Context, t time.Time) error
}
