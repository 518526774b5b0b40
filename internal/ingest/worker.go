// Package ingest consumes raw job-posting batches from RabbitMQ, normalizes
// them and writes them to Postgres.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/jobwell/jobsync-be/internal/ingest/domain"
	"github.com/jobwell/jobsync-be/internal/ingest/storage"
	"github.com/jobwell/jobsync-be/shared/postgresql"
	"github.com/jobwell/jobsync-be/shared/rabbitmq"
)

// Config holds ingestion worker configuration.
type Config struct {
	Logger        *slog.Logger
	DBClient      *postgresql.Client
	RabbitClient  *rabbitmq.Client
	Concurrency   int
	PrefetchCount int
	BatchSize     int
	QueueName     string
}

// Worker consumes batch messages and processes them through a pool of
// goroutines.
type Worker struct {
	logger        *slog.Logger
	storage       *storage.Storage
	rabbitClient  *rabbitmq.Client
	concurrency   int
	prefetchCount int
	batchSize     int
	queueName     string
	workerID      string
	batchChan     chan *domain.BatchMessage
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

// NewWorker creates a new ingestion worker instance.
func NewWorker(cfg *Config) *Worker {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "ingest"
	}

	return &Worker{
		logger:        cfg.Logger,
		storage:       storage.NewStorage(cfg.DBClient.GetDB(), cfg.Logger),
		rabbitClient:  cfg.RabbitClient,
		concurrency:   cfg.Concurrency,
		prefetchCount: cfg.PrefetchCount,
		batchSize:     cfg.BatchSize,
		queueName:     cfg.QueueName,
		workerID:      fmt.Sprintf("%s-%s", hostname, uuid.New().String()[:8]),
		batchChan:     make(chan *domain.BatchMessage),
		stopChan:      make(chan struct{}),
	}
}

// Start subscribes to the ingest queue, spawns the worker pool and dispatches
// deliveries until the context is canceled.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting ingestion worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
		slog.Int("batch_size", w.batchSize),
	)

	deliveries, err := w.setupConsumer()
	if err != nil {
		return fmt.Errorf("failed to setup consumer: %w", err)
	}

	w.spawnWorkerPool(ctx)
	w.startMessageDispatcher(ctx, deliveries)

	return nil
}

// Stop gracefully stops the worker pool.
func (w *Worker) Stop() {
	w.logger.Info("Stopping ingestion worker...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Ingestion worker stopped")
}
