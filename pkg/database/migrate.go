package database

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Migrate menjalankan schema.sql (idempotent, pakai IF NOT EXISTS)
func Migrate(ctx context.Context, db Querier) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
