package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jobwell/jobsync-be/internal/ingest/domain"
)

// spawnWorkerPool spawns N processing goroutines based on the configured
// concurrency.
func (w *Worker) spawnWorkerPool(ctx context.Context) {
	w.logger.Info("Spawning worker pool",
		slog.Int("concurrency", w.concurrency),
		slog.String("worker_id", w.workerID),
	)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.workerLoop(ctx, i)
	}
}

// workerLoop is the main processing loop for each pool goroutine.
func (w *Worker) workerLoop(ctx context.Context, workerNum int) {
	defer w.wg.Done()

	workerName := fmt.Sprintf("%s-%d", w.workerID, workerNum)
	w.logger.Info("Worker goroutine started",
		slog.String("worker_name", workerName),
	)

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Worker goroutine stopping - stopChan closed",
				slog.String("worker_name", workerName),
			)
			return

		case <-ctx.Done():
			w.logger.Info("Worker goroutine stopping - context canceled",
				slog.String("worker_name", workerName),
			)
			return

		case msg, ok := <-w.batchChan:
			if !ok {
				return
			}

			err := w.processBatch(ctx, msg)

			channel := w.rabbitClient.GetChannel()
			if channel == nil {
				w.logger.Error("Failed to get RabbitMQ channel for ACK/NACK",
					slog.String("worker_name", workerName),
					slog.String("source", msg.Source),
				)
				continue
			}

			if err != nil {
				w.logger.Error("Batch processing failed",
					slog.String("worker_name", workerName),
					slog.String("source", msg.Source),
					slog.String("error", err.Error()),
				)

				requeue := w.shouldRequeueBatch(err)
				if nackErr := channel.Nack(msg.DeliveryTag, false, requeue); nackErr != nil {
					w.logger.Error("Failed to NACK batch",
						slog.String("worker_name", workerName),
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			if ackErr := channel.Ack(msg.DeliveryTag, false); ackErr != nil {
				w.logger.Error("Failed to ACK batch",
					slog.String("worker_name", workerName),
					slog.String("error", ackErr.Error()),
				)
			}
		}
	}
}

// shouldRequeueBatch requeues only transient failures; malformed batches go
// to the dead-letter queue.
func (w *Worker) shouldRequeueBatch(err error) bool {
	if errors.Is(err, domain.ErrInvalidPayload) || errors.Is(err, domain.ErrEmptyBatch) {
		return false
	}

	var retryableErr *domain.RetryableError
	return errors.As(err, &retryableErr)
}
