//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"trustlink/internal/attestation/models"
	"trustlink/internal/events"
	"trustlink/pkg/testutil/containers"
)

const testTopic = "trustlink.attestations.test"

type KafkaPublisherIntegrationSuite struct {
	suite.Suite

	redpanda  *containers.RedpandaContainer
	publisher *events.KafkaPublisher
	consumer  *kgo.Client
}

func TestKafkaPublisherIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherIntegrationSuite))
}

func (s *KafkaPublisherIntegrationSuite) SetupSuite() {
	s.redpanda = containers.NewRedpandaContainer(s.T())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publisher, err := events.NewKafkaPublisher(ctx, []string{s.redpanda.Broker}, testTopic)
	s.Require().NoError(err)
	s.publisher = publisher

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.redpanda.Broker),
		kgo.ConsumeTopics(testTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	s.consumer = consumer
}

func (s *KafkaPublisherIntegrationSuite) TearDownSuite() {
	if s.consumer != nil {
		s.consumer.Close()
	}
	if s.publisher != nil {
		s.publisher.Close()
	}
}

func (s *KafkaPublisherIntegrationSuite) fetchRecords(n int) []*kgo.Record {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var records []*kgo.Record
	for len(records) < n {
		fetches := s.consumer.PollFetches(ctx)
		s.Require().NoError(fetches.Err())
		fetches.EachRecord(func(r *kgo.Record) {
			records = append(records, r)
		})
	}
	return records
}

func headerValue(r *kgo.Record, key string) string {
	for _, h := range r.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (s *KafkaPublisherIntegrationSuite) TestPublishesCreatedAndRevoked() {
	ctx := context.Background()

	created := models.CreatedEvent{
		ID:        "att-1",
		Issuer:    "GISSUER",
		Subject:   "GSUBJECT",
		ClaimType: "KYC_PASSED",
		Timestamp: 1000,
	}
	s.Require().NoError(s.publisher.AttestationCreated(ctx, created))

	revoked := models.RevokedEvent{ID: "att-1", Issuer: "GISSUER"}
	s.Require().NoError(s.publisher.AttestationRevoked(ctx, revoked))

	records := s.fetchRecords(2)

	s.Equal("attestation_created", headerValue(records[0], "event_type"))
	s.Equal("GSUBJECT", string(records[0].Key))
	var gotCreated models.CreatedEvent
	s.Require().NoError(json.Unmarshal(records[0].Value, &gotCreated))
	s.Equal(created, gotCreated)

	s.Equal("attestation_revoked", headerValue(records[1], "event_type"))
	s.Equal("GISSUER", string(records[1].Key))
	var gotRevoked models.RevokedEvent
	s.Require().NoError(json.Unmarshal(records[1].Value, &gotRevoked))
	s.Equal(revoked, gotRevoked)
}

func (s *KafkaPublisherIntegrationSuite) TestSameKeyEventsPreserveOrder() {
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		event := models.CreatedEvent{
			ID:        "ordered-" + string(rune('a'+i)),
			Issuer:    "GISSUER",
			Subject:   "GSAMEKEY",
			ClaimType: "KYC_PASSED",
			Timestamp: uint64(i),
		}
		s.Require().NoError(s.publisher.AttestationCreated(ctx, event))
	}

	// The consumer is shared across tests; keep fetching until all five
	// records for this key have arrived.
	var timestamps []uint64
	deadline := time.Now().Add(30 * time.Second)
	for len(timestamps) < 5 && time.Now().Before(deadline) {
		for _, r := range s.fetchRecords(1) {
			if string(r.Key) != "GSAMEKEY" {
				continue
			}
			var event models.CreatedEvent
			s.Require().NoError(json.Unmarshal(r.Value, &event))
			timestamps = append(timestamps, event.Timestamp)
		}
	}
	s.Equal([]uint64{0, 1, 2, 3, 4}, timestamps)
}
