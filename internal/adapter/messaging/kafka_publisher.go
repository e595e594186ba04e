// Package messaging holds the event publishers that are not backed by Redis.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"delivery-wallet/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher implements ports.EventPublisher on a Kafka topic.
// Messages are keyed by owner so one owner's events stay on one partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	log    zerolog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, log zerolog.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w, topic: topic, log: log}
}

// Publish writes evt as one JSON message.
func (p *KafkaPublisher) Publish(ctx context.Context, evt domain.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.OwnerID.String()),
		Value: payload,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka write %s: %w", evt.Type, err)
	}

	p.log.Debug().
		Str("topic", p.topic).
		Str("event_type", string(evt.Type)).
		Str("event_id", evt.ID.String()).
		Msg("event published")
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher only logs events. It is used when no broker is configured.
type LogPublisher struct {
	log zerolog.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(log zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

// Publish logs evt at debug level.
func (p *LogPublisher) Publish(_ context.Context, evt domain.Event) error {
	p.log.Debug().
		Str("event_type", string(evt.Type)).
		Str("owner_id", evt.OwnerID.String()).
		Str("amount", evt.Amount.StringFixed(domain.MoneyScale)).
		Str("reference", evt.Reference).
		Msg("event")
	return nil
}
