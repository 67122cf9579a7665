// Package service implements the attestation lifecycle and authorization
// engine: who may create and revoke, how status is derived, and how claims
// are verified against the subject index.
package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"trustlink/internal/attestation/metrics"
	"trustlink/internal/attestation/models"
	"trustlink/internal/attestation/store"
	"trustlink/internal/auth"
	"trustlink/internal/events"
	"trustlink/pkg/domain"
	derrors "trustlink/pkg/domain-errors"
	"trustlink/pkg/platform/sentinel"
	"trustlink/pkg/requestcontext"
)

// Clock returns the current time as integer ticks. Kept as an injected port
// so ID derivation and expiry checks are testable without a live clock.
type Clock interface {
	Now(ctx context.Context) uint64
}

// RequestClock reads the request-pinned wall clock as Unix seconds. Because
// the request-time middleware pins one reading per request, the duplicate
// check and the derived ID always agree on the tick.
type RequestClock struct{}

func (RequestClock) Now(ctx context.Context) uint64 {
	return uint64(requestcontext.Now(ctx).Unix())
}

// Service is the registry engine. All state lives behind the store ports;
// every public operation authenticates before it authorizes, and either
// fully applies its effects or applies none of them.
type Service struct {
	roles        store.RoleStore
	attestations store.AttestationStore
	index        store.IndexStore
	authn        auth.Authenticator
	publisher    events.Publisher
	clock        Clock
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
}

type serviceConfig struct {
	publisher events.Publisher
	clock     Clock
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures optional service collaborators.
type Option func(*serviceConfig)

func WithPublisher(p events.Publisher) Option {
	return func(c *serviceConfig) { c.publisher = p }
}

func WithClock(clock Clock) Option {
	return func(c *serviceConfig) { c.clock = clock }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) { c.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *serviceConfig) { c.metrics = m }
}

func New(roles store.RoleStore, attestations store.AttestationStore, index store.IndexStore, authn auth.Authenticator, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.clock == nil {
		cfg.clock = RequestClock{}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return &Service{
		roles:        roles,
		attestations: attestations,
		index:        index,
		authn:        authn,
		publisher:    cfg.publisher,
		clock:        cfg.clock,
		logger:       cfg.logger,
		metrics:      cfg.metrics,
		tracer:       otel.Tracer("trustlink/attestation"),
	}
}

// Initialize sets the administrator exactly once. The duplicate check runs
// before authentication so a second initialize fails the same way regardless
// of who calls it.
func (s *Service) Initialize(ctx context.Context, admin domain.Address) error {
	if admin.IsZero() {
		return derrors.New(derrors.CodeBadRequest, "admin address is required")
	}
	if _, err := s.roles.GetAdmin(ctx); err == nil {
		return derrors.New(derrors.CodeAlreadyInitialized, "administrator is already set")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return derrors.Wrap(err, derrors.CodeInternal, "failed to read administrator")
	}
	if err := s.authn.Authorize(ctx, admin); err != nil {
		return err
	}
	if err := s.roles.SetAdmin(ctx, admin); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return derrors.New(derrors.CodeAlreadyInitialized, "administrator is already set")
		}
		return derrors.Wrap(err, derrors.CodeInternal, "failed to set administrator")
	}
	s.logger.InfoContext(ctx, "registry initialized", "admin", admin.String())
	return nil
}

// RegisterIssuer adds an issuer to the authorized set. Admin only.
func (s *Service) RegisterIssuer(ctx context.Context, admin, issuer domain.Address) error {
	if issuer.IsZero() {
		return derrors.New(derrors.CodeBadRequest, "issuer address is required")
	}
	if err := s.requireAdmin(ctx, admin); err != nil {
		return err
	}
	if err := s.roles.AddIssuer(ctx, issuer); err != nil {
		return derrors.Wrap(err, derrors.CodeInternal, "failed to register issuer")
	}
	s.logger.InfoContext(ctx, "issuer registered", "issuer", issuer.String())
	return nil
}

// RemoveIssuer removes an issuer from the authorized set. Admin only.
// Removal does not touch the issuer's existing attestations, and the issuer
// keeps the right to revoke them.
func (s *Service) RemoveIssuer(ctx context.Context, admin, issuer domain.Address) error {
	if issuer.IsZero() {
		return derrors.New(derrors.CodeBadRequest, "issuer address is required")
	}
	if err := s.requireAdmin(ctx, admin); err != nil {
		return err
	}
	if err := s.roles.RemoveIssuer(ctx, issuer); err != nil {
		return derrors.Wrap(err, derrors.CodeInternal, "failed to remove issuer")
	}
	s.logger.InfoContext(ctx, "issuer removed", "issuer", issuer.String())
	return nil
}

// CreateAttestation records a new claim by a currently-authorized issuer
// about a subject. Returns the deterministic attestation ID.
func (s *Service) CreateAttestation(ctx context.Context, issuer, subject domain.Address, claimType domain.ClaimType, expiration *uint64) (string, error) {
	ctx, span := s.tracer.Start(ctx, "attestation.create",
		trace.WithAttributes(attribute.String("claim_type", claimType.String())))
	defer span.End()

	if issuer.IsZero() || subject.IsZero() {
		return "", derrors.New(derrors.CodeBadRequest, "issuer and subject addresses are required")
	}
	if claimType == "" {
		return "", derrors.New(derrors.CodeBadRequest, "claim type is required")
	}
	if err := s.authn.Authorize(ctx, issuer); err != nil {
		return "", err
	}
	// Creation requires current issuer-set membership, unlike revocation,
	// which tracks authorship.
	ok, err := s.roles.IsIssuer(ctx, issuer)
	if err != nil {
		return "", derrors.Wrap(err, derrors.CodeInternal, "failed to check issuer authorization")
	}
	if !ok {
		return "", derrors.Newf(derrors.CodeUnauthorized, "%s is not an authorized issuer", issuer)
	}

	now := s.clock.Now(ctx)
	id := models.GenerateID(issuer, subject, claimType, now)

	exists, err := s.attestations.Has(ctx, id)
	if err != nil {
		return "", derrors.Wrap(err, derrors.CodeInternal, "failed to check for duplicate")
	}
	if exists {
		return "", derrors.New(derrors.CodeDuplicateAttestation, "identical attestation already exists at this tick")
	}

	attestation := models.Attestation{
		ID:         id,
		Issuer:     issuer,
		Subject:    subject,
		ClaimType:  claimType,
		Timestamp:  now,
		Expiration: expiration,
		Revoked:    false,
	}

	// The record is stored before the index entries so an index entry never
	// references a missing record.
	if err := s.attestations.Save(ctx, attestation); err != nil {
		return "", derrors.Wrap(err, derrors.CodeInternal, "failed to store attestation")
	}
	if err := s.index.AppendSubject(ctx, subject, id); err != nil {
		return "", derrors.Wrap(err, derrors.CodeInternal, "failed to index attestation by subject")
	}
	if err := s.index.AppendIssuer(ctx, issuer, id); err != nil {
		return "", derrors.Wrap(err, derrors.CodeInternal, "failed to index attestation by issuer")
	}

	s.emitCreated(ctx, attestation)
	s.metrics.IncrementCreated()
	s.logger.InfoContext(ctx, "attestation created",
		"id", id,
		"issuer", issuer.String(),
		"subject", subject.String(),
		"claim_type", claimType.String(),
	)
	return id, nil
}

// RevokeAttestation flips the revoked flag exactly once. Only the original
// issuer may revoke, whether or not they are still in the issuer set.
func (s *Service) RevokeAttestation(ctx context.Context, issuer domain.Address, id string) error {
	ctx, span := s.tracer.Start(ctx, "attestation.revoke")
	defer span.End()

	if id == "" {
		return derrors.New(derrors.CodeBadRequest, "attestation id is required")
	}
	if err := s.authn.Authorize(ctx, issuer); err != nil {
		return err
	}

	attestation, err := s.attestations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return derrors.New(derrors.CodeNotFound, "attestation does not exist")
		}
		return derrors.Wrap(err, derrors.CodeInternal, "failed to load attestation")
	}
	if attestation.Issuer != issuer {
		return derrors.New(derrors.CodeUnauthorized, "only the original issuer may revoke")
	}
	if attestation.Revoked {
		return derrors.New(derrors.CodeAlreadyRevoked, "attestation is already revoked")
	}

	attestation.Revoked = true
	if err := s.attestations.Save(ctx, attestation); err != nil {
		return derrors.Wrap(err, derrors.CodeInternal, "failed to store revocation")
	}

	s.emitRevoked(ctx, attestation)
	s.metrics.IncrementRevoked()
	s.logger.InfoContext(ctx, "attestation revoked", "id", id, "issuer", issuer.String())
	return nil
}

// HasValidClaim reports whether the subject currently holds a valid
// attestation of the given claim type. The scan tolerates index entries that
// point at missing records; the index is append-only and such a record should
// never be absent, but a hypothetical inconsistency must not fail the check.
func (s *Service) HasValidClaim(ctx context.Context, subject domain.Address, claimType domain.ClaimType) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "attestation.has_valid_claim",
		trace.WithAttributes(attribute.String("claim_type", claimType.String())))
	defer span.End()

	ids, err := s.index.ListSubject(ctx, subject, 0, math.MaxUint64)
	if err != nil {
		return false, derrors.Wrap(err, derrors.CodeInternal, "failed to read subject index")
	}
	now := s.clock.Now(ctx)

	for scanned, id := range ids {
		attestation, err := s.attestations.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				s.logger.WarnContext(ctx, "index entry references missing attestation", "id", id)
				continue
			}
			return false, derrors.Wrap(err, derrors.CodeInternal, "failed to load attestation")
		}
		if attestation.ClaimType != claimType {
			continue
		}
		if attestation.StatusAt(now) == models.StatusValid {
			s.metrics.ObserveClaimCheck(true, scanned+1)
			return true, nil
		}
	}
	s.metrics.ObserveClaimCheck(false, len(ids))
	return false, nil
}

// GetAttestation returns the full record for an ID.
func (s *Service) GetAttestation(ctx context.Context, id string) (models.Attestation, error) {
	attestation, err := s.attestations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Attestation{}, derrors.New(derrors.CodeNotFound, "attestation does not exist")
		}
		return models.Attestation{}, derrors.Wrap(err, derrors.CodeInternal, "failed to load attestation")
	}
	return attestation, nil
}

// GetAttestationStatus derives the current status of an attestation.
func (s *Service) GetAttestationStatus(ctx context.Context, id string) (models.Status, error) {
	attestation, err := s.GetAttestation(ctx, id)
	if err != nil {
		return "", err
	}
	return attestation.StatusAt(s.clock.Now(ctx)), nil
}

// GetSubjectAttestations lists attestation IDs for a subject in creation
// order, paginated.
func (s *Service) GetSubjectAttestations(ctx context.Context, subject domain.Address, start, limit uint64) ([]string, error) {
	ids, err := s.index.ListSubject(ctx, subject, start, limit)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CodeInternal, "failed to read subject index")
	}
	return ids, nil
}

// GetIssuerAttestations lists attestation IDs created by an issuer in
// creation order, paginated.
func (s *Service) GetIssuerAttestations(ctx context.Context, issuer domain.Address, start, limit uint64) ([]string, error) {
	ids, err := s.index.ListIssuer(ctx, issuer, start, limit)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CodeInternal, "failed to read issuer index")
	}
	return ids, nil
}

// IsIssuer reports current issuer-set membership.
func (s *Service) IsIssuer(ctx context.Context, address domain.Address) (bool, error) {
	ok, err := s.roles.IsIssuer(ctx, address)
	if err != nil {
		return false, derrors.Wrap(err, derrors.CodeInternal, "failed to check issuer membership")
	}
	return ok, nil
}

// GetAdmin returns the administrator address.
func (s *Service) GetAdmin(ctx context.Context) (domain.Address, error) {
	admin, err := s.roles.GetAdmin(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", derrors.New(derrors.CodeNotInitialized, "registry is not initialized")
		}
		return "", derrors.Wrap(err, derrors.CodeInternal, "failed to read administrator")
	}
	return admin, nil
}

// requireAdmin authenticates the caller as admin and checks that admin is
// the stored administrator.
func (s *Service) requireAdmin(ctx context.Context, admin domain.Address) error {
	if admin.IsZero() {
		return derrors.New(derrors.CodeBadRequest, "admin address is required")
	}
	if err := s.authn.Authorize(ctx, admin); err != nil {
		return err
	}
	stored, err := s.roles.GetAdmin(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return derrors.New(derrors.CodeNotInitialized, "registry is not initialized")
		}
		return derrors.Wrap(err, derrors.CodeInternal, "failed to read administrator")
	}
	if stored != admin {
		return derrors.New(derrors.CodeUnauthorized, "caller is not the administrator")
	}
	return nil
}

// Notification failures are logged, never surfaced: delivery is fire-and-
// forget by contract.
func (s *Service) emitCreated(ctx context.Context, attestation models.Attestation) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.AttestationCreated(ctx, models.NewCreatedEvent(attestation)); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish created event", "id", attestation.ID, "error", err)
	}
}

func (s *Service) emitRevoked(ctx context.Context, attestation models.Attestation) {
	if s.publisher == nil {
		return
	}
	event := models.RevokedEvent{ID: attestation.ID, Issuer: attestation.Issuer}
	if err := s.publisher.AttestationRevoked(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish revoked event", "id", attestation.ID, "error", err)
	}
}
