package ticket

import (
	"context"
	"encoding/json"
	"fmt"

	"noodle-pos/internal/connections/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue is the durable queue kitchen tickets are handed off to.
const Queue = "kitchen_tickets"

// QueueEmitter publishes ticket Records to RabbitMQ as persistent JSON
// messages. The workflow treats emission as fire-and-forget; errors are
// returned for logging only.
type QueueEmitter struct {
	client *rabbitmq.Client
}

func NewQueueEmitter(client *rabbitmq.Client) (*QueueEmitter, error) {
	if err := client.DeclareQueue(Queue); err != nil {
		return nil, fmt.Errorf("failed to declare queue %s: %w", Queue, err)
	}
	return &QueueEmitter{client: client}, nil
}

func (e *QueueEmitter) Emit(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal ticket: %w", err)
	}
	headers := amqp.Table{
		"x-source": "pos-service",
	}
	if err := e.client.Publish(ctx, Queue, body, headers); err != nil {
		return fmt.Errorf("failed to publish ticket: %w", err)
	}
	return nil
}
