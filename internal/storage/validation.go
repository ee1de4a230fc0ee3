package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minjae-dev/habitflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrDuplicateID   = errors.New("duplicate routine id")
	ErrInvalidRecord = errors.New("invalid routine record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRoutines validates a routine slice before persisting. A nil slice
// is allowed: saving nil clears the stored list.
func validateRoutines(routines []model.Routine) error {
	seen := make(map[string]struct{}, len(routines))
	for i, r := range routines {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("%w: missing id at index %d", ErrInvalidRecord, i)
		}
		if strings.TrimSpace(r.Task) == "" {
			return fmt.Errorf("%w: empty task at index %d", ErrInvalidRecord, i)
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}
