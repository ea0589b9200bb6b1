package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/evermarks/emark-staking-service/internal/config"
	"github.com/evermarks/emark-staking-service/internal/observability/metrics"
)

// EventPublisher is the slice of the queue manager the staking flow needs.
type EventPublisher interface {
	PushStakingEvent(ctx context.Context, event *StakingEvent) error
}

type QueueManager struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
}

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open queue channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		cfg.QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", cfg.QueueName, err)
	}

	return &QueueManager{
		conn:      conn,
		channel:   channel,
		queueName: cfg.QueueName,
	}, nil
}

// PushStakingEvent publishes the event as a persistent JSON message. A lost
// message means a downstream consumer misses one notification, so publish
// failures are surfaced to the caller rather than swallowed.
func (qm *QueueManager) PushStakingEvent(ctx context.Context, event *StakingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal staking event: %w", err)
	}

	err = qm.channel.PublishWithContext(
		ctx,
		"", // default exchange
		qm.queueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		metrics.RecordQueuePublishError()
		return fmt.Errorf("failed to publish %s event: %w", event.EventType, err)
	}

	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	if err := qm.channel.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue channel")
	}
	if err := qm.conn.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close queue connection")
	}
}
