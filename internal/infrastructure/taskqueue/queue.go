package taskqueue

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	appsync "github.com/Alchez/shopify-integration/internal/application/sync"
	"github.com/Alchez/shopify-integration/internal/infrastructure/cache"
)

// QueueConfig holds queue configuration
type QueueConfig struct {
	// Workers is the number of concurrent job workers
	Workers int
	// Capacity bounds the number of queued jobs
	Capacity int
	// JobTimeout bounds each job run; it doubles as the lock TTL so a dead
	// holder's lock expires once its job could no longer be running
	JobTimeout time.Duration
}

// DefaultQueueConfig returns default queue configuration
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		Workers:    2,
		Capacity:   16,
		JobTimeout: 30 * time.Minute,
	}
}

type task struct {
	name string
	run  func(ctx context.Context)
}

// Queue runs named background jobs with single-flight semantics: while a job
// with a given name is queued or running, further submissions under that name
// are rejected. The lock store decides the single-flight scope, so a Redis
// store extends the guarantee across instances.
type Queue struct {
	config QueueConfig
	locks  cache.JobLockStore
	logger *zap.Logger

	tasks     chan task
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewQueue creates a new job queue
func NewQueue(config QueueConfig, locks cache.JobLockStore, logger *zap.Logger) *Queue {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Capacity <= 0 {
		config.Capacity = 16
	}
	return &Queue{
		config: config,
		locks:  locks,
		logger: logger,
		tasks:  make(chan task, config.Capacity),
	}
}

// Start starts the worker pool
func (q *Queue) Start(ctx context.Context) error {
	q.mu.Lock()
	if q.isRunning {
		q.mu.Unlock()
		return nil
	}
	q.isRunning = true
	q.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	q.cancel = cancel

	for i := 0; i < q.config.Workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}

	q.logger.Info("Task queue started",
		zap.Int("workers", q.config.Workers),
		zap.Int("capacity", q.config.Capacity),
		zap.Duration("job_timeout", q.config.JobTimeout),
	)
	return nil
}

// Stop gracefully stops the queue, waiting for in-flight jobs up to the
// context deadline.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if !q.isRunning {
		q.mu.Unlock()
		return nil
	}
	q.isRunning = false
	q.mu.Unlock()

	if q.cancel != nil {
		q.cancel()
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.logger.Info("Task queue stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Enqueue submits a named job. Returns false when the queue is not running,
// the queue is full, or a job with the same name is already in flight.
func (q *Queue) Enqueue(name string, job func(ctx context.Context)) bool {
	q.mu.Lock()
	running := q.isRunning
	q.mu.Unlock()
	if !running {
		return false
	}

	lockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	acquired, err := q.locks.TryAcquire(lockCtx, name, q.config.JobTimeout)
	if err != nil {
		q.logger.Error("job lock acquire failed", zap.String("job", name), zap.Error(err))
		return false
	}
	if !acquired {
		q.logger.Info("job already in flight, rejected", zap.String("job", name))
		return false
	}

	select {
	case q.tasks <- task{name: name, run: job}:
		return true
	default:
		q.releaseLock(name)
		q.logger.Warn("task queue full, job rejected", zap.String("job", name))
		return false
	}
}

// worker consumes and runs tasks until the queue is stopped
func (q *Queue) worker(ctx context.Context, id int) {
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-q.tasks:
			q.runTask(ctx, id, t)
		}
	}
}

// runTask runs one task with a timeout, panic isolation and lock release
func (q *Queue) runTask(ctx context.Context, workerID int, t task) {
	defer q.releaseLock(t.name)

	jobCtx, cancel := context.WithTimeout(ctx, q.config.JobTimeout)
	defer cancel()

	start := time.Now()
	q.logger.Info("job started",
		zap.String("job", t.name),
		zap.Int("worker", workerID),
	)

	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("job panicked",
				zap.String("job", t.name),
				zap.Any("panic", r),
				zap.Stack("stacktrace"),
			)
		}
	}()

	t.run(jobCtx)

	q.logger.Info("job finished",
		zap.String("job", t.name),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// releaseLock releases a job lock with a fresh context so shutdown cannot
// strand a held lock.
func (q *Queue) releaseLock(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := q.locks.Release(ctx, name); err != nil {
		q.logger.Error("job lock release failed", zap.String("job", name), zap.Error(err))
	}
}

// Ensure Queue implements the application task queue
var _ appsync.TaskQueue = (*Queue)(nil)
