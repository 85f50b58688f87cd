// Package kafka publishes committed domain events to Kafka, one topic per
// ledger, keyed by aggregate id so the events of one aggregate stay ordered.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewWriter returns a writer for brokers. Topics are set per message.
func NewWriter(brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// Topics maps an aggregate type to its topic.
type Topics map[string]string

// eventMessage is the JSON value of a published message.
type eventMessage struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	AggregateType string            `json:"aggregateType"`
	AggregateID   string            `json:"aggregateId"`
	OccurredAt    time.Time         `json:"occurredAt"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

type Publisher struct {
	writer MessageWriter
	topics Topics
}

func NewPublisher(writer MessageWriter, topics Topics) *Publisher {
	return &Publisher{writer: writer, topics: topics}
}

// Publish writes every event in one batch. Events of an aggregate type with
// no topic are reported as an error and the rest are still written.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	msgs := make([]kafka.Message, 0, len(events))
	var errList []error
	for _, e := range events {
		msg, err := p.message(e)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		msgs = append(msgs, msg)
	}

	if len(msgs) > 0 {
		if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
			errList = append(errList, fmt.Errorf("write %d event(s): %w", len(msgs), err))
		}
	}
	return errors.Join(errList...)
}

func (p *Publisher) message(e kernel.DomainEvent) (kafka.Message, error) {
	topic, ok := p.topics[e.AggregateType]
	if !ok || topic == "" {
		return kafka.Message{}, fmt.Errorf("no topic for %s events", e.AggregateType)
	}

	value, err := json.Marshal(eventMessage{
		ID:            e.ID.String(),
		Name:          e.Name,
		AggregateType: e.AggregateType,
		AggregateID:   e.AggregateID.String(),
		OccurredAt:    e.OccurredAt.UTC(),
		Attributes:    e.Attributes,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Topic: topic,
		Key:   []byte(e.AggregateID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Name)},
		},
		Time: e.OccurredAt,
	}, nil
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...kernel.DomainEvent) error {
	return nil
}
