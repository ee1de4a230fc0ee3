// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/minjae-dev/habitflow/internal/model"
)

// Storage defines the contract for the persistence layer.
//
// Load returns the routines stored for a user in list order; a user with no
// saved routines yields an empty slice, not an error. Save replaces whatever
// was stored for the user with the given list wholesale.
type Storage interface {
	Load(ctx context.Context, userID string) ([]model.Routine, error)
	Save(ctx context.Context, userID string, routines []model.Routine) error
	Migrate(ctx context.Context) error
	Close() error
}

// Suggester produces habit suggestions for a position in the routine list.
// Implementations must degrade to a built-in candidate list on upstream
// failure; they never return an empty suggestion set alongside a nil error.
type Suggester interface {
	Suggest(ctx context.Context, req model.SuggestionRequest) ([]model.Suggestion, error)
}

// DiaryWriter produces the short diary summary for a day's completed tasks.
type DiaryWriter interface {
	Summarize(ctx context.Context, tasks []string) (string, error)
}

// RetryOptions configures retry behavior for operations against collaborators.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
