package models

import "trustlink/pkg/domain"

// Event payloads emitted to the notification publisher. Consumers get
// per-key ordering only: created events are keyed by subject, revoked events
// by issuer, matching write order for that key.

// CreatedEvent announces a new attestation.
type CreatedEvent struct {
	ID        string         `json:"id"`
	Issuer    domain.Address `json:"issuer"`
	Subject   domain.Address `json:"subject"`
	ClaimType string         `json:"claim_type"`
	Timestamp uint64         `json:"timestamp"`
}

// NewCreatedEvent builds the creation notification for an attestation.
func NewCreatedEvent(a Attestation) CreatedEvent {
	return CreatedEvent{
		ID:        a.ID,
		Issuer:    a.Issuer,
		Subject:   a.Subject,
		ClaimType: a.ClaimType.String(),
		Timestamp: a.Timestamp,
	}
}

// RevokedEvent announces a revocation.
type RevokedEvent struct {
	ID     string         `json:"id"`
	Issuer domain.Address `json:"issuer"`
}
