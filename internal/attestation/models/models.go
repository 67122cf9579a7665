// Package models defines the attestation record, its derived status, and the
// deterministic identifier scheme.
package models

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"trustlink/pkg/domain"
)

// Status is the observable validity of an attestation, computed on read from
// the stored flags and the current tick. It is never persisted.
type Status string

const (
	StatusValid   Status = "valid"
	StatusExpired Status = "expired"
	StatusRevoked Status = "revoked"
)

// Attestation is a time-bounded claim an issuer asserts about a subject.
// Every field except Revoked is immutable after creation; Revoked flips to
// true exactly once and never back.
type Attestation struct {
	ID         string           `json:"id"`
	Issuer     domain.Address   `json:"issuer"`
	Subject    domain.Address   `json:"subject"`
	ClaimType  domain.ClaimType `json:"claim_type"`
	Timestamp  uint64           `json:"timestamp"`
	Expiration *uint64          `json:"expiration,omitempty"`
	Revoked    bool             `json:"revoked"`
}

// StatusAt derives the attestation's status at the given tick. Revocation
// dominates expiration; expiry is strict (now >= expiration is expired).
func (a Attestation) StatusAt(now uint64) Status {
	if a.Revoked {
		return StatusRevoked
	}
	if a.Expiration != nil && now >= *a.Expiration {
		return StatusExpired
	}
	return StatusValid
}

// GenerateID derives the attestation identifier from its creation tuple.
// Identical inputs at the same tick produce the same ID, which is what makes
// the create-time duplicate guard work. The digest is length-framed so no
// choice of address or claim strings can make two distinct tuples collide.
func GenerateID(issuer, subject domain.Address, claimType domain.ClaimType, timestamp uint64) string {
	h := sha256.New()
	writeField(h, []byte(issuer))
	writeField(h, []byte(subject))
	writeField(h, []byte(claimType))
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], timestamp)
	h.Write(ts[:])
	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h interface{ Write(p []byte) (int, error) }, field []byte) {
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(field)))
	h.Write(size[:])
	h.Write(field)
}
