package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/common"
	"github.com/minjae-dev/habitflow/internal/config"
	"github.com/minjae-dev/habitflow/internal/model"
	"github.com/minjae-dev/habitflow/internal/service"
	"github.com/minjae-dev/habitflow/internal/storage"
	"github.com/minjae-dev/habitflow/internal/store"
)

// initStorage opens the configured SQLite database and applies migrations.
func initStorage(ctx context.Context, cfg config.Config) (service.Storage, error) {
	st, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, common.NewUserError("데이터베이스를 열 수 없어요. 저장 경로 설정을 확인해 주세요.", err)
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, common.NewUserError("데이터베이스를 준비하지 못했어요.", err)
	}
	return st, nil
}

// renderError picks the line printed on stderr when a command fails.
// User-facing failures carry their own message; everything else prints
// as-is.
func renderError(err error) string {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return cli.FormatError(userErr.UserMessage)
	}
	return err.Error()
}

// loadStore reads the user's routines into an in-memory store.
func loadStore(ctx context.Context, st service.Storage, cfg config.Config) (*store.Store, error) {
	routines, err := st.Load(ctx, cfg.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load routines: %w", err)
	}
	s := store.New(cfg.RatingScale)
	if err := s.Replace(routines); err != nil {
		return nil, fmt.Errorf("failed to populate store: %w", err)
	}
	return s, nil
}

// saveStore writes the store's snapshot back, replacing what was stored.
func saveStore(ctx context.Context, st service.Storage, cfg config.Config, s *store.Store) error {
	if err := st.Save(ctx, cfg.UserID, s.Snapshot()); err != nil {
		return fmt.Errorf("failed to save routines: %w", err)
	}
	return nil
}

// routineAt resolves a 1-based list position (as printed by `habitflow
// list`) into the routine at that position.
func routineAt(s *store.Store, posArg string) (model.Routine, error) {
	pos, err := strconv.Atoi(posArg)
	if err != nil {
		return model.Routine{}, fmt.Errorf("invalid position %q: expected a number from 'habitflow list'", posArg)
	}
	snap := s.Snapshot()
	if pos < 1 || pos > len(snap) {
		return model.Routine{}, fmt.Errorf("position %d out of range: have %d routines", pos, len(snap))
	}
	return snap[pos-1], nil
}

// todayWeekday is the default day for new entries.
func todayWeekday() string {
	return model.WeekdayForDate(time.Now())
}
