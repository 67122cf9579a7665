// Package store defines the persistence ports for the registry and their
// in-memory, Redis, and Postgres implementations.
//
// Stores are interface-driven to keep the engine testable and to allow
// swapping persistence without rewiring business code. Stores speak
// sentinel errors; the service layer translates them into coded domain
// errors.
package store

import (
	"context"

	"trustlink/internal/attestation/models"
	"trustlink/pkg/domain"
)

// RoleStore tracks the single administrator and the authorized issuer set.
// It is pure data access: admin-only authorization is enforced by the
// service, not here.
type RoleStore interface {
	// SetAdmin writes the admin slot exactly once. Returns
	// sentinel.ErrAlreadyUsed if an administrator is already set.
	SetAdmin(ctx context.Context, admin domain.Address) error
	// GetAdmin returns sentinel.ErrNotFound until SetAdmin has succeeded.
	GetAdmin(ctx context.Context) (domain.Address, error)
	// AddIssuer and RemoveIssuer are idempotent set mutations.
	AddIssuer(ctx context.Context, issuer domain.Address) error
	RemoveIssuer(ctx context.Context, issuer domain.Address) error
	IsIssuer(ctx context.Context, address domain.Address) (bool, error)
}

// AttestationStore keys full attestation records by their derived ID.
type AttestationStore interface {
	// Save upserts; both creation and the revocation flag flip go through it.
	Save(ctx context.Context, attestation models.Attestation) error
	// FindByID returns sentinel.ErrNotFound for unknown IDs.
	FindByID(ctx context.Context, id string) (models.Attestation, error)
	Has(ctx context.Context, id string) (bool, error)
}

// IndexStore holds the two append-only multi-maps from principal to
// attestation IDs, in insertion order. Entries are added on creation only;
// revocation never removes them.
type IndexStore interface {
	AppendSubject(ctx context.Context, subject domain.Address, id string) error
	AppendIssuer(ctx context.Context, issuer domain.Address, id string) error
	// ListSubject and ListIssuer return entries [start, min(start+limit, total)).
	// A start beyond the total or a zero limit yields an empty slice, never an
	// error; start+limit saturates instead of wrapping.
	ListSubject(ctx context.Context, subject domain.Address, start, limit uint64) ([]string, error)
	ListIssuer(ctx context.Context, issuer domain.Address, start, limit uint64) ([]string, error)
}

// pageBounds clamps a [start, start+limit) window to a sequence of length
// total, saturating on overflow instead of wrapping.
func pageBounds(total, start, limit uint64) (lo, hi uint64) {
	if start >= total || limit == 0 {
		return 0, 0
	}
	hi = start + limit
	if hi < start || hi > total { // overflow saturates to total
		hi = total
	}
	return start, hi
}
