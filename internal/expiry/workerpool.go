package expiry

import (
	"context"

	"go.uber.org/zap"
)

// WorkerPoolI bounds how many expirations run at once. A sweep can return
// hundreds of stale transactions and each expiration hits the database, so
// they are funneled through a fixed set of workers instead of one goroutine
// per transaction.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task finalizes a single expired transaction.
type Task func() error

type WorkerPool struct {
	pool chan Task
}

// NewWorkerPool starts size workers draining a task queue of the same
// capacity. Size comes from SWEEP_WORKERS.
func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{pool: make(chan Task, size)}
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Failed to expire transaction", zap.Error(err))
		}
	}
}

// AddTask enqueues one expiration, blocking while all workers are busy and
// the queue is full. Canceling ctx abandons the enqueue; the transaction
// stays pending and the next sweep picks it up again.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.pool:
	default:
		close(wp.pool)
	}
}
