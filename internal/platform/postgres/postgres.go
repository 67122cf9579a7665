// Package postgres opens the registry database and applies its schema.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Schema for the registry tables. The two index tables carry their own
// BIGSERIAL sequence so listings read back in insertion order, matching the
// append-only index semantics.
const Schema = `
CREATE TABLE IF NOT EXISTS registry_admin (
	singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
	address   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS issuers (
	address TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS attestations (
	id         TEXT PRIMARY KEY,
	issuer     TEXT NOT NULL,
	subject    TEXT NOT NULL,
	claim_type TEXT NOT NULL,
	ts         BIGINT NOT NULL,
	expiration BIGINT,
	revoked    BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS subject_attestations (
	seq            BIGSERIAL PRIMARY KEY,
	subject        TEXT NOT NULL,
	attestation_id TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS subject_attestations_subject_idx
	ON subject_attestations (subject, seq);

CREATE TABLE IF NOT EXISTS issuer_attestations (
	seq            BIGSERIAL PRIMARY KEY,
	issuer         TEXT NOT NULL,
	attestation_id TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS issuer_attestations_issuer_idx
	ON issuer_attestations (issuer, seq);
`

// Open connects to Postgres, verifies the connection, and applies the schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
