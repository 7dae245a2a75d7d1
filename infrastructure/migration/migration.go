// Package migration cria o schema do banco e popula os dados de demonstração
package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/imobiflow/imobiflow-api/infrastructure/database/postgres"
	"github.com/imobiflow/imobiflow-api/pkg/log"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT FALSE,
		role_id       INTEGER NOT NULL DEFAULT 2,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		codigo           TEXT UNIQUE,
		user_id          INTEGER NOT NULL REFERENCES users (id),
		title            TEXT NOT NULL,
		description      TEXT,
		property_type    TEXT NOT NULL,
		transaction_type TEXT,
		status           TEXT NOT NULL DEFAULT 'available',
		price            NUMERIC(14, 2),
		location         TEXT,
		neighborhood     TEXT,
		city             TEXT NOT NULL,
		area             NUMERIC(10, 2),
		bedrooms         INTEGER,
		bathrooms        INTEGER,
		parking_spaces   INTEGER,
		is_launch        BOOLEAN NOT NULL DEFAULT FALSE,
		images           TEXT[] NOT NULL DEFAULT '{}',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS property_images (
		id          SERIAL PRIMARY KEY,
		property_id UUID NOT NULL REFERENCES properties (id) ON DELETE CASCADE,
		image_url   TEXT NOT NULL,
		is_primary  BOOLEAN NOT NULL DEFAULT FALSE,
		position    INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS properties_user_id_idx ON properties (user_id)`,
	`CREATE INDEX IF NOT EXISTS properties_launch_idx ON properties (is_launch, status)`,
	`CREATE INDEX IF NOT EXISTS property_images_property_id_idx ON property_images (property_id, position)`,
}

// Migrate aplica o schema; todas as instruções são idempotentes
func Migrate(ctx context.Context, q postgres.Queryer) error {
	startTime := time.Now()
	log.L.Infof("Aplicando %d instruções de schema...", len(schemaStatements))

	for i, stmt := range schemaStatements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar instrução %d do schema: %w", i+1, err)
		}
	}

	log.L.Infof("Schema aplicado em %v", time.Since(startTime))
	return nil
}
