package storage

import (
	"context"
	"fmt"

	"github.com/minjae-dev/habitflow/internal/model"
)

// Load returns the stored routines for a user in list order. A user with no
// saved routines yields an empty slice.
func (s *SQLiteStorage) Load(ctx context.Context, userID string) ([]model.Routine, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, day, start_time, end_time, task, done, rating, is_habit, emoji, description
		FROM routines
		WHERE user_id = ?
		ORDER BY position
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query routines: %w", err)
	}
	defer func() { _ = rows.Close() }()

	routines := []model.Routine{}
	for rows.Next() {
		var r model.Routine
		// is_habit is the wire name; it maps onto the IsHabit field.
		if err := rows.Scan(&r.ID, &r.Day, &r.Start, &r.End, &r.Task, &r.Done, &r.Rating, &r.IsHabit, &r.Emoji, &r.Description); err != nil {
			return nil, fmt.Errorf("failed to scan routine: %w", err)
		}
		routines = append(routines, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate routines: %w", err)
	}

	return routines, nil
}

// Save replaces the stored routine list for a user with the given one.
// Position indexes record the list order so reordering survives a reload.
func (s *SQLiteStorage) Save(ctx context.Context, userID string, routines []model.Routine) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateRoutines(routines); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM routines WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear routines: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO routines (
			user_id, id, position, day, start_time, end_time,
			task, done, rating, is_habit, emoji, description
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range routines {
		if _, err := stmt.ExecContext(ctx,
			userID, r.ID, i, r.Day, r.Start, r.End,
			r.Task, r.Done, r.Rating, r.IsHabit, r.Emoji, r.Description,
		); err != nil {
			return fmt.Errorf("failed to insert routine %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}
