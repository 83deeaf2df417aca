package postgres

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// migrations are idempotent and safe to re-run on every deploy.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		aadhaar VARCHAR(12),
		email TEXT,
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_aadhaar_key
		ON users (aadhaar) WHERE aadhaar IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS documents (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		doc_type VARCHAR(20) NOT NULL,
		doc_url TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS documents_user_id_idx ON documents (user_id)`,
	`CREATE TABLE IF NOT EXISTS faces (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		face_url TEXT NOT NULL,
		liveness_score DOUBLE PRECISION,
		match_score DOUBLE PRECISION,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS faces_user_id_idx ON faces (user_id)`,
}

// Migrate applies the schema. Runs inside one transaction so a partial
// deploy never leaves half the tables behind.
func Migrate(db *sqlx.DB) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin migration transaction: %w", err)
	}

	for _, stmt := range migrations {
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migrations: %w", err)
	}

	log.Printf("schema migrations applied (%d statements)", len(migrations))
	return nil
}
