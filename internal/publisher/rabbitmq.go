package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/juju/clock"
	amqp "github.com/rabbitmq/amqp091-go"

	"procurement_sync/internal/domain"
)

// Message kinds understood by the mailer consuming the queue.
const (
	KindAdminMatch  = "admin_match"
	KindDonorUpdate = "donor_update"
	KindSyncFailure = "sync_failure"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQ hands notifications to a mail worker through a durable queue.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    channel
	exchange   string
	routingKey string
	adminEmail string
	clock      clock.Clock
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
	AdminEmail string
}

func NewRabbitMQ(cfg Config, clk clock.Clock, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	r := newRabbitMQ(ch, cfg, clk, logger)
	r.conn = conn
	return r, nil
}

func newRabbitMQ(ch channel, cfg Config, clk clock.Clock, logger *slog.Logger) *RabbitMQ {
	return &RabbitMQ{
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		adminEmail: cfg.AdminEmail,
		clock:      clk,
		logger:     logger.With("component", "rabbitmq"),
	}
}

// NotificationMessage is the envelope published for every notice. Payload
// holds the notice matching Kind.
type NotificationMessage struct {
	Kind      string          `json:"kind"`
	To        string          `json:"to"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

func (r *RabbitMQ) SendAdminMatchNotice(ctx context.Context, n domain.AdminMatchNotice) error {
	return r.publish(ctx, KindAdminMatch, r.adminEmail, n)
}

func (r *RabbitMQ) SendDonorUpdateNotice(ctx context.Context, n domain.DonorUpdateNotice) error {
	return r.publish(ctx, KindDonorUpdate, n.DonorEmail, n)
}

func (r *RabbitMQ) SendSyncFailureNotice(ctx context.Context, n domain.SyncFailureNotice) error {
	return r.publish(ctx, KindSyncFailure, r.adminEmail, n)
}

func (r *RabbitMQ) publish(ctx context.Context, kind, to string, notice any) error {
	if to == "" {
		return fmt.Errorf("publish %s: no recipient", kind)
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", kind, err)
	}

	now := r.clock.Now().UTC()
	body, err := json.Marshal(NotificationMessage{
		Kind:      kind,
		To:        to,
		Payload:   payload,
		Timestamp: now,
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         kind,
			Body:         body,
			Timestamp:    now,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", kind, err)
	}

	r.logger.Debug("published notification", "kind", kind, "to", to)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
