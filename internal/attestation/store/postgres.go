package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"trustlink/internal/attestation/models"
	"trustlink/pkg/domain"
	"trustlink/pkg/platform/sentinel"
)

// Postgres-backed stores. Ticks are stored as BIGINT; the registry's clock
// is Unix seconds, which fits int64 comfortably.

type PostgresRoleStore struct {
	db *sql.DB
}

func NewPostgresRoleStore(db *sql.DB) *PostgresRoleStore {
	return &PostgresRoleStore{db: db}
}

func (s *PostgresRoleStore) SetAdmin(ctx context.Context, admin domain.Address) error {
	// The singleton check constraint makes the slot write-once; a second
	// insert conflicts and is left untouched.
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO registry_admin (singleton, address) VALUES (TRUE, $1)
		 ON CONFLICT (singleton) DO NOTHING`, admin.String())
	if err != nil {
		return fmt.Errorf("set admin: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set admin: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

func (s *PostgresRoleStore) GetAdmin(ctx context.Context) (domain.Address, error) {
	var address string
	err := s.db.QueryRowContext(ctx, `SELECT address FROM registry_admin`).Scan(&address)
	if errors.Is(err, sql.ErrNoRows) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get admin: %w", err)
	}
	return domain.Address(address), nil
}

func (s *PostgresRoleStore) AddIssuer(ctx context.Context, issuer domain.Address) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO issuers (address) VALUES ($1) ON CONFLICT (address) DO NOTHING`,
		issuer.String())
	if err != nil {
		return fmt.Errorf("add issuer: %w", err)
	}
	return nil
}

func (s *PostgresRoleStore) RemoveIssuer(ctx context.Context, issuer domain.Address) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM issuers WHERE address = $1`, issuer.String())
	if err != nil {
		return fmt.Errorf("remove issuer: %w", err)
	}
	return nil
}

func (s *PostgresRoleStore) IsIssuer(ctx context.Context, address domain.Address) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM issuers WHERE address = $1)`, address.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("issuer membership: %w", err)
	}
	return exists, nil
}

type PostgresAttestationStore struct {
	db *sql.DB
}

func NewPostgresAttestationStore(db *sql.DB) *PostgresAttestationStore {
	return &PostgresAttestationStore{db: db}
}

func (s *PostgresAttestationStore) Save(ctx context.Context, attestation models.Attestation) error {
	var expiration sql.NullInt64
	if attestation.Expiration != nil {
		expiration = sql.NullInt64{Int64: int64(*attestation.Expiration), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attestations (id, issuer, subject, claim_type, ts, expiration, revoked)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET revoked = EXCLUDED.revoked`,
		attestation.ID,
		attestation.Issuer.String(),
		attestation.Subject.String(),
		attestation.ClaimType.String(),
		int64(attestation.Timestamp),
		expiration,
		attestation.Revoked,
	)
	if err != nil {
		return fmt.Errorf("save attestation: %w", err)
	}
	return nil
}

func (s *PostgresAttestationStore) FindByID(ctx context.Context, id string) (models.Attestation, error) {
	var (
		attestation models.Attestation
		issuer      string
		subject     string
		claimType   string
		ts          int64
		expiration  sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, issuer, subject, claim_type, ts, expiration, revoked
		 FROM attestations WHERE id = $1`, id).
		Scan(&attestation.ID, &issuer, &subject, &claimType, &ts, &expiration, &attestation.Revoked)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Attestation{}, sentinel.ErrNotFound
	}
	if err != nil {
		return models.Attestation{}, fmt.Errorf("find attestation: %w", err)
	}
	attestation.Issuer = domain.Address(issuer)
	attestation.Subject = domain.Address(subject)
	attestation.ClaimType = domain.ClaimType(claimType)
	attestation.Timestamp = uint64(ts)
	if expiration.Valid {
		exp := uint64(expiration.Int64)
		attestation.Expiration = &exp
	}
	return attestation, nil
}

func (s *PostgresAttestationStore) Has(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM attestations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("attestation exists: %w", err)
	}
	return exists, nil
}

type PostgresIndexStore struct {
	db *sql.DB
}

func NewPostgresIndexStore(db *sql.DB) *PostgresIndexStore {
	return &PostgresIndexStore{db: db}
}

func (s *PostgresIndexStore) AppendSubject(ctx context.Context, subject domain.Address, id string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO subject_attestations (subject, attestation_id) VALUES ($1, $2)`,
		subject.String(), id)
	if err != nil {
		return fmt.Errorf("append subject index: %w", err)
	}
	return nil
}

func (s *PostgresIndexStore) AppendIssuer(ctx context.Context, issuer domain.Address, id string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO issuer_attestations (issuer, attestation_id) VALUES ($1, $2)`,
		issuer.String(), id)
	if err != nil {
		return fmt.Errorf("append issuer index: %w", err)
	}
	return nil
}

func (s *PostgresIndexStore) ListSubject(ctx context.Context, subject domain.Address, start, limit uint64) ([]string, error) {
	return s.listRange(ctx,
		`SELECT attestation_id FROM subject_attestations
		 WHERE subject = $1 ORDER BY seq OFFSET $2 LIMIT $3`,
		subject.String(), start, limit)
}

func (s *PostgresIndexStore) ListIssuer(ctx context.Context, issuer domain.Address, start, limit uint64) ([]string, error) {
	return s.listRange(ctx,
		`SELECT attestation_id FROM issuer_attestations
		 WHERE issuer = $1 ORDER BY seq OFFSET $2 LIMIT $3`,
		issuer.String(), start, limit)
}

func (s *PostgresIndexStore) listRange(ctx context.Context, query, key string, start, limit uint64) ([]string, error) {
	if limit == 0 || start > math.MaxInt64 {
		return []string{}, nil
	}
	// OFFSET/LIMIT already clamp at the tail; only the int64 conversion needs
	// saturation.
	clamped := limit
	if clamped > math.MaxInt64 {
		clamped = math.MaxInt64
	}
	rows, err := s.db.QueryContext(ctx, query, key, int64(start), int64(clamped))
	if err != nil {
		return nil, fmt.Errorf("index range: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("index range: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("index range: %w", err)
	}
	return ids, nil
}
