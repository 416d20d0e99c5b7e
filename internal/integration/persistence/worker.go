package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/budgetbook/backend/internal/application/adapter"
)

// Worker drains the persist queue in dispatch order and writes each slice
// through the persister. It owns the only goroutine that touches the
// backend for writes, so slice saves never race.
type Worker struct {
	jobs       chan adapter.PersistJob
	persister  adapter.SlicePersister
	maxRetries int
	retryDelay time.Duration
}

// WorkerConfig holds configuration for the persist worker.
type WorkerConfig struct {
	QueueSize  int
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		QueueSize:  256,
		MaxRetries: 3,
		RetryDelay: 500 * time.Millisecond,
	}
}

// NewWorker creates a persist worker backed by a bounded FIFO queue.
func NewWorker(persister adapter.SlicePersister, config WorkerConfig) *Worker {
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultWorkerConfig().QueueSize
	}
	return &Worker{
		jobs:       make(chan adapter.PersistJob, config.QueueSize),
		persister:  persister,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}
}

// Enqueue queues a save without blocking the dispatcher. When the queue is
// full the job is dropped and logged; the next write of the same slice
// carries the full current value, so a drop loses no more than latency.
func (w *Worker) Enqueue(job adapter.PersistJob) {
	select {
	case w.jobs <- job:
	default:
		slog.Warn("Persist queue full, dropping save",
			"slice", job.Slice,
		)
	}
}

// Start begins the worker loop. It blocks until the context is cancelled,
// then drains whatever is already queued before returning.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Persist worker started",
		"queue_size", cap(w.jobs),
		"max_retries", w.maxRetries,
	)

	for {
		select {
		case <-ctx.Done():
			w.drain()
			slog.Info("Persist worker shutting down")
			return
		case job := <-w.jobs:
			w.processJob(ctx, job)
		}
	}
}

// processJob saves a single slice, retrying transient failures.
func (w *Worker) processJob(ctx context.Context, job adapter.PersistJob) {
	var err error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.retryDelay):
			}
		}

		err = w.persister.Save(ctx, job.Slice, job.Value, job.Notify)
		if err == nil {
			return
		}

		slog.Error("Failed to persist slice",
			"slice", job.Slice,
			"attempt", attempt+1,
			"error", err,
		)
	}

	slog.Warn("Giving up on slice save",
		"slice", job.Slice,
		"attempts", w.maxRetries+1,
	)
}

// drain flushes queued jobs with a short deadline during shutdown.
func (w *Worker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for {
		select {
		case job := <-w.jobs:
			if err := w.persister.Save(ctx, job.Slice, job.Value, job.Notify); err != nil {
				slog.Error("Failed to persist slice during drain",
					"slice", job.Slice,
					"error", err,
				)
			}
		default:
			return
		}
	}
}

var _ adapter.PersistQueue = (*Worker)(nil)
