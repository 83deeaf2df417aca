package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// KYCPublisher publishes kyc record events to RabbitMQ for the external
// verification worker. Counters are updated from concurrent request
// handlers, so they are atomics.
type KYCPublisher struct {
	conn              *RabbitMQConnection
	messagesPublished atomic.Int64
	messagesFailed    atomic.Int64
	lastPublishNano   atomic.Int64
}

// NewKYCPublisher creates a new kyc event publisher
func NewKYCPublisher(conn *RabbitMQConnection) *KYCPublisher {
	return &KYCPublisher{conn: conn}
}

// PublishEvent publishes a kyc event to the kyc_events queue
func (p *KYCPublisher) PublishEvent(ctx context.Context, event KYCEvent) error {
	// Ensure the queue exists
	_, err := p.conn.Channel.QueueDeclare(
		KYCEventsQueue, // queue name
		true,           // durable
		false,          // delete when unused
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		p.messagesFailed.Add(1)
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.messagesFailed.Add(1)
		return fmt.Errorf("failed to marshal kyc event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",             // exchange
		KYCEventsQueue, // routing key (queue name)
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.messagesFailed.Add(1)
		return fmt.Errorf("failed to publish kyc event: %w", err)
	}

	p.messagesPublished.Add(1)
	p.lastPublishNano.Store(time.Now().UnixNano())

	slog.Info("KYC event published",
		"queue", KYCEventsQueue,
		"event_type", event.EventType,
		"record_id", event.RecordID,
	)

	return nil
}

// GetMetrics returns publisher metrics
func (p *KYCPublisher) GetMetrics() map[string]any {
	metrics := map[string]any{
		"messages_published": p.messagesPublished.Load(),
		"messages_failed":    p.messagesFailed.Load(),
		"queue":              KYCEventsQueue,
	}
	if nano := p.lastPublishNano.Load(); nano > 0 {
		metrics["last_publish_time"] = time.Unix(0, nano)
	}
	return metrics
}
