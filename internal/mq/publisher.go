package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shaiso/Delega/internal/domain"
)

// Publisher публикует доменные события в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Envelope — конверт доменного события в очереди.
type Envelope struct {
	// ID — уникальный идентификатор сообщения.
	ID string `json:"id"`

	// Kind — стабильное имя события (domain.Kind*).
	Kind string `json:"kind"`

	// AggregateID — идентификатор агрегата, к которому относится событие.
	AggregateID string `json:"aggregate_id"`

	// Payload — сериализованное событие.
	Payload json.RawMessage `json:"payload"`

	// Timestamp — время публикации.
	Timestamp time.Time `json:"timestamp"`
}

// PublishOrganizationEvent публикует событие организации в delega.orgs.
func (p *Publisher) PublishOrganizationEvent(ctx context.Context, id domain.OrganizationID, event domain.OrganizationEvent) error {
	return p.publish(ctx, ExchangeOrgs, RoutingKeyOrgEvents, id.String(), event.Kind(), event)
}

// PublishTaskEvent публикует событие задачи в delega.tasks.
func (p *Publisher) PublishTaskEvent(ctx context.Context, id domain.TaskID, event domain.TaskEvent) error {
	return p.publish(ctx, ExchangeTasks, RoutingKeyTaskEvents, id.String(), event.Kind(), event)
}

// publish сериализует событие в конверт и отправляет его.
func (p *Publisher) publish(ctx context.Context, exchange Exchange, routingKey RoutingKey, aggregateID, kind string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", kind, err)
	}

	env := Envelope{
		ID:          uuid.New().String(),
		Kind:        kind,
		AggregateID: aggregateID,
		Payload:     payload,
		Timestamp:   time.Now(),
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(exchange),   // exchange
			string(routingKey), // routing key
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent, // сообщение переживёт рестарт RabbitMQ
				MessageId:    env.ID,
				Type:         kind,
				Timestamp:    env.Timestamp,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", exchange, routingKey, err)
		}

		p.logger.Debug("published event",
			"exchange", exchange,
			"kind", kind,
			"aggregate_id", aggregateID,
			"message_id", env.ID,
		)

		return nil
	})
}
