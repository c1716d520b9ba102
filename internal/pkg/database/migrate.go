package database

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/svaraj/bizdesk/migrations"
)

// Migrate applies all pending goose migrations from the embedded filesystem.
func (p *PostgresClient) Migrate() error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(p.db.DB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
