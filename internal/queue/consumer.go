package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jobfit/internal/config"
	"jobfit/internal/domain/match"
	"jobfit/internal/pipeline"
	"jobfit/internal/usecase"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

type BatchRunner interface {
	ScoreAll(ctx context.Context, userID uuid.UUID, weights *match.WeightMap) (pipeline.BatchSummary, error)
}

type disposition int

const (
	ack disposition = iota
	requeue
	drop
)

// Consumer reads batch requests and runs them one at a time per channel.
type Consumer struct {
	cfg    config.AMQPConfig
	runner BatchRunner
	log    *slog.Logger
}

func NewConsumer(cfg config.AMQPConfig, runner BatchRunner, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{cfg: cfg, runner: runner, log: logger}
}

// Run consumes until ctx is cancelled or the broker closes the channel.
func (c *Consumer) Run(ctx context.Context) error {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if err := declare(ch, c.cfg.Queue); err != nil {
		return fmt.Errorf("declare queue %s: %w", c.cfg.Queue, err)
	}
	if c.cfg.Prefetch > 0 {
		if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
			return fmt.Errorf("set prefetch: %w", err)
		}
	}

	msgs, err := ch.Consume(
		c.cfg.Queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.cfg.Queue, err)
	}

	c.log.Info("consumer started", "component", "queue", "queue", c.cfg.Queue, "prefetch", c.cfg.Prefetch)
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("rabbitmq delivery channel closed")
			}
			c.settle(d, c.handle(ctx, d.Body, d.Redelivered))
		}
	}
}

func (c *Consumer) settle(d amqp.Delivery, disp disposition) {
	var err error
	switch disp {
	case ack:
		err = d.Ack(false)
	case requeue:
		err = d.Nack(false, true)
	default:
		err = d.Nack(false, false)
	}
	if err != nil {
		c.log.Warn("settle delivery failed", "component", "queue", "error", err)
	}
}

// handle runs one message. Permanent failures are dropped; transient ones are
// requeued once and dropped on redelivery.
func (c *Consumer) handle(ctx context.Context, body []byte, redelivered bool) disposition {
	req, err := DecodeBatchRequest(body)
	if err != nil {
		c.log.Warn("dropping malformed batch request", "component", "queue", "error", err)
		return drop
	}

	sum, err := c.runner.ScoreAll(ctx, req.UserID, req.Weights)
	switch {
	case err == nil:
		c.log.Info("batch request done", "component", "queue", "user_id", req.UserID,
			"succeeded", sum.Succeeded, "failed", sum.Failed)
		return ack
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrProfileNotFound):
		c.log.Warn("dropping batch request", "component", "queue", "user_id", req.UserID, "error", err)
		return drop
	case redelivered:
		c.log.Error("batch request failed after redelivery", "component", "queue", "user_id", req.UserID, "error", err)
		return drop
	default:
		c.log.Warn("batch request failed, requeueing", "component", "queue", "user_id", req.UserID, "error", err)
		return requeue
	}
}
