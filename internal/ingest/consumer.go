package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jobwell/jobsync-be/internal/ingest/domain"
)

// setupConsumer configures QoS and starts consuming from the ingest queue.
func (w *Worker) setupConsumer() (<-chan amqp.Delivery, error) {
	channel := w.rabbitClient.GetChannel()
	if channel == nil {
		return nil, fmt.Errorf("rabbitmq channel is nil")
	}

	// Per-consumer prefetch keeps one slow batch from starving the pool.
	if err := channel.Qos(w.prefetchCount, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	deliveries, err := w.rabbitClient.Consume(w.workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	w.logger.Info("RabbitMQ consumer started",
		slog.String("consumer_tag", w.workerID),
		slog.String("queue", w.queueName),
		slog.Int("prefetch_count", w.prefetchCount),
	)

	return deliveries, nil
}

// startMessageDispatcher parses deliveries into batch messages and hands them
// to the worker pool. Malformed messages are nacked without requeue.
func (w *Worker) startMessageDispatcher(ctx context.Context, deliveries <-chan amqp.Delivery) {
	w.logger.Info("Message dispatcher started",
		slog.String("worker_id", w.workerID),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Message dispatcher stopped - context canceled")
			return

		case delivery, ok := <-deliveries:
			if !ok {
				w.logger.Warn("RabbitMQ delivery channel closed")
				return
			}

			var msg domain.BatchMessage
			if err := json.Unmarshal(delivery.Body, &msg); err != nil {
				w.logger.Error("Failed to parse batch message JSON",
					slog.String("error", err.Error()),
				)
				w.nack(delivery, false)
				continue
			}

			if msg.Source == "" {
				w.logger.Error("Batch message names no source")
				w.nack(delivery, false)
				continue
			}

			if len(msg.Postings) == 0 {
				// Nothing to do; ack so the connector is not re-delivered.
				if err := delivery.Ack(false); err != nil {
					w.logger.Error("Failed to ACK empty batch",
						slog.String("error", err.Error()),
					)
				}
				continue
			}

			msg.DeliveryTag = delivery.DeliveryTag

			select {
			case w.batchChan <- &msg:
				w.logger.Debug("Batch dispatched to worker pool",
					slog.String("source", msg.Source),
					slog.Int("postings", len(msg.Postings)),
					slog.Uint64("delivery_tag", delivery.DeliveryTag),
				)
			case <-ctx.Done():
				w.logger.Info("Message dispatcher stopped while dispatching batch")
				w.nack(delivery, true)
				return
			}
		}
	}
}

func (w *Worker) nack(delivery amqp.Delivery, requeue bool) {
	if err := delivery.Nack(false, requeue); err != nil {
		w.logger.Error("Failed to NACK message",
			slog.String("error", err.Error()),
		)
	}
}
