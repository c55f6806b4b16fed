package events

import (
	"context"
	"encoding/json"
	"time"

	"booking-core/internal/domain/event"
	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher delivers domain events to the notification collaborator.
type Publisher interface {
	Publish(ctx context.Context, events []event.Event) error
	Close() error
}

type message struct {
	ID         uuid.UUID      `json:"id"`
	Type       string         `json:"type"`
	BookingID  uuid.UUID      `json:"booking_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// Publish keys every message by booking id so one booking's events stay ordered
// within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, events []event.Event) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(message{
			ID:         e.ID,
			Type:       e.Type.String(),
			BookingID:  e.BookingID,
			OccurredAt: e.OccurredAt,
			Payload:    e.Payload,
		})
		if err != nil {
			return errs.Wrapf(err, "failed to encode event %s", e.ID)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.BookingID.String()),
			Value: value,
			Time:  e.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(e.Type.String())},
			},
		})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return errs.Wrap(err, "failed to write events to kafka")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
