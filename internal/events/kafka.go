package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"trustlink/internal/attestation/models"
)

// Event type discriminator carried in each record's headers.
const (
	eventTypeCreated = "attestation_created"
	eventTypeRevoked = "attestation_revoked"
)

// KafkaPublisher produces lifecycle notifications to a single topic.
// Created events are keyed by subject and revoked events by issuer, so
// partition ordering gives consumers exactly the per-key ordering the
// registry promises.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

// NewKafkaPublisher connects to the brokers and ensures the topic exists.
func NewKafkaPublisher(ctx context.Context, brokers []string, topic string) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerLinger(0),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}

	adm := kadm.NewClient(client)
	if _, err := adm.CreateTopic(ctx, 1, 1, nil, topic); err != nil && !errors.Is(err, kerr.TopicAlreadyExists) {
		client.Close()
		return nil, fmt.Errorf("ensure topic %q: %w", topic, err)
	}

	return &KafkaPublisher{client: client, topic: topic}, nil
}

func (p *KafkaPublisher) AttestationCreated(ctx context.Context, event models.CreatedEvent) error {
	return p.produce(ctx, eventTypeCreated, event.Subject.String(), event)
}

func (p *KafkaPublisher) AttestationRevoked(ctx context.Context, event models.RevokedEvent) error {
	return p.produce(ctx, eventTypeRevoked, event.Issuer.String(), event)
}

func (p *KafkaPublisher) produce(ctx context.Context, eventType, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", eventType, err)
	}
	record := &kgo.Record{
		Topic:   p.topic,
		Key:     []byte(key),
		Value:   value,
		Headers: []kgo.RecordHeader{{Key: "event_type", Value: []byte(eventType)}},
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce %s: %w", eventType, err)
	}
	return nil
}

// Close flushes buffered records and releases the client.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
