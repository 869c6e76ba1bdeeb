package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jobfit/internal/config"

	"github.com/streadway/amqp"
)

// Publisher sends batch requests to the durable batch queue.
type Publisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	mu    sync.Mutex
}

func declare(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	return err
}

func NewPublisher(cfg config.AMQPConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	if err := declare(ch, cfg.Queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", cfg.Queue, err)
	}
	return &Publisher{conn: conn, ch: ch, queue: cfg.Queue}, nil
}

func (p *Publisher) PublishBatch(ctx context.Context, r BatchRequest) error {
	if r.RequestedAt.IsZero() {
		r.RequestedAt = time.Now().UTC()
	}
	body, err := EncodeBatchRequest(r)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Publish(
		"",
		p.queue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    r.RequestedAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
