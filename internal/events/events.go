// Package events emits the registry's fire-and-forget notifications.
// Delivery is best-effort: publish failures are surfaced to the engine,
// which logs them without failing the operation.
package events

import (
	"context"
	"log/slog"

	"trustlink/internal/attestation/models"
)

// Publisher fans attestation lifecycle notifications out to external
// consumers. Implementations must preserve ordering per key (subject for
// created, issuer for revoked); no cross-key ordering is promised.
type Publisher interface {
	AttestationCreated(ctx context.Context, event models.CreatedEvent) error
	AttestationRevoked(ctx context.Context, event models.RevokedEvent) error
}

// LogPublisher writes notifications to the structured log. Used for local
// runs and as the default when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) AttestationCreated(ctx context.Context, event models.CreatedEvent) error {
	p.logger.InfoContext(ctx, "attestation created",
		"id", event.ID,
		"issuer", event.Issuer.String(),
		"subject", event.Subject.String(),
		"claim_type", event.ClaimType,
		"timestamp", event.Timestamp,
	)
	return nil
}

func (p *LogPublisher) AttestationRevoked(ctx context.Context, event models.RevokedEvent) error {
	p.logger.InfoContext(ctx, "attestation revoked",
		"id", event.ID,
		"issuer", event.Issuer.String(),
	)
	return nil
}
