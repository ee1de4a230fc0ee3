package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/minjae-dev/habitflow/internal/common"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS routines (
					user_id TEXT NOT NULL,
					id TEXT NOT NULL,
					position INTEGER NOT NULL,
					day TEXT NOT NULL,
					start_time TEXT NOT NULL DEFAULT '',
					end_time TEXT NOT NULL DEFAULT '',
					task TEXT NOT NULL,
					done INTEGER NOT NULL DEFAULT 0,
					rating INTEGER NOT NULL DEFAULT 0,
					is_habit INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (user_id, id)
				)`,
				`CREATE INDEX idx_routines_user_position ON routines(user_id, position)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return fmt.Errorf("failed to execute %q: %w", q, err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Habit decoration columns",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`ALTER TABLE routines ADD COLUMN emoji TEXT NOT NULL DEFAULT ''`,
				`ALTER TABLE routines ADD COLUMN description TEXT NOT NULL DEFAULT ''`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return fmt.Errorf("failed to execute %q: %w", q, err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if currentVersion > ExpectedSchemaVersion {
		return fmt.Errorf("%w: schema version %d is newer than supported version %d",
			common.ErrDatabaseCorrupted, currentVersion, ExpectedSchemaVersion)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
