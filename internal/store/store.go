// Package store holds the in-memory ordered routine list, the single source
// of truth for statistics, export, and suggestion placement.
//
// The store is mutated exclusively by the single thread of control that owns
// it; concurrent writers do not exist in this design, so no locking is done.
package store

import (
	"fmt"
	"strings"

	"github.com/minjae-dev/habitflow/internal/common"
	"github.com/minjae-dev/habitflow/internal/model"
)

// Store is an ordered list of routines with reducer-style state transitions.
// List order is significant: suggested habits are inserted relative to
// existing entries and reordering changes that placement.
type Store struct {
	routines []model.Routine
	scale    int
}

// New creates an empty store using the given rating scale.
// A scale of 0 falls back to model.DefaultRatingScale.
func New(scale int) *Store {
	if scale <= 0 {
		scale = model.DefaultRatingScale
	}
	return &Store{scale: scale}
}

// Scale returns the configured rating scale upper bound.
func (s *Store) Scale() int {
	return s.scale
}

// Len returns the number of routines in the store.
func (s *Store) Len() int {
	return len(s.routines)
}

// Snapshot returns a copy of the routine list in order.
func (s *Store) Snapshot() []model.Routine {
	out := make([]model.Routine, len(s.routines))
	copy(out, s.routines)
	return out
}

// Replace swaps the full routine list, e.g. after loading from storage.
// Duplicate IDs are rejected to keep later lookups unambiguous.
func (s *Store) Replace(routines []model.Routine) error {
	seen := make(map[string]struct{}, len(routines))
	for _, r := range routines {
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: routine id %s", common.ErrDuplicateEntry, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	s.routines = make([]model.Routine, len(routines))
	copy(s.routines, routines)
	return nil
}

// Get returns the routine with the given ID.
func (s *Store) Get(id string) (model.Routine, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Routine{}, fmt.Errorf("routine %s: %w", id, common.ErrNotFound)
	}
	return s.routines[idx], nil
}

// Add validates and appends a routine to the end of the list.
func (s *Store) Add(r model.Routine) error {
	if err := r.Validate(s.scale); err != nil {
		return err
	}
	if s.indexOf(r.ID) >= 0 {
		return fmt.Errorf("%w: routine id %s", common.ErrDuplicateEntry, r.ID)
	}
	s.routines = append(s.routines, r)
	return nil
}

// InsertAfter validates and inserts a routine directly after the entry with
// the given ID. Used when accepting a suggested habit between two routines.
func (s *Store) InsertAfter(id string, r model.Routine) error {
	if err := r.Validate(s.scale); err != nil {
		return err
	}
	if s.indexOf(r.ID) >= 0 {
		return fmt.Errorf("%w: routine id %s", common.ErrDuplicateEntry, r.ID)
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("routine %s: %w", id, common.ErrNotFound)
	}
	s.routines = append(s.routines, model.Routine{})
	copy(s.routines[idx+2:], s.routines[idx+1:])
	s.routines[idx+1] = r
	return nil
}

// ToggleDone flips the done flag and returns the new value.
func (s *Store) ToggleDone(id string) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, fmt.Errorf("routine %s: %w", id, common.ErrNotFound)
	}
	s.routines[idx].Done = !s.routines[idx].Done
	return s.routines[idx].Done, nil
}

// SetRating sets the satisfaction rating, bounded by the configured scale.
func (s *Store) SetRating(id string, rating int) error {
	if rating < 0 || rating > s.scale {
		return fmt.Errorf("%w: %d not in [0,%d]", model.ErrInvalidRating, rating, s.scale)
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("routine %s: %w", id, common.ErrNotFound)
	}
	s.routines[idx].Rating = rating
	return nil
}

// EditTask replaces the task label in place.
func (s *Store) EditTask(id, task string) error {
	if strings.TrimSpace(task) == "" {
		return model.ErrEmptyTask
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("routine %s: %w", id, common.ErrNotFound)
	}
	s.routines[idx].Task = task
	return nil
}

// Delete removes the routine with the given ID.
func (s *Store) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("routine %s: %w", id, common.ErrNotFound)
	}
	s.routines = append(s.routines[:idx], s.routines[idx+1:]...)
	return nil
}

// Reorder moves the routine at position from to position to, shifting the
// entries between them. Mirrors drag-and-drop semantics.
func (s *Store) Reorder(from, to int) error {
	if from < 0 || from >= len(s.routines) || to < 0 || to >= len(s.routines) {
		return fmt.Errorf("reorder %d -> %d: %w", from, to, common.ErrNotFound)
	}
	if from == to {
		return nil
	}
	moved := s.routines[from]
	s.routines = append(s.routines[:from], s.routines[from+1:]...)
	s.routines = append(s.routines, model.Routine{})
	copy(s.routines[to+1:], s.routines[to:])
	s.routines[to] = moved
	return nil
}

// Neighbors returns the tasks surrounding the routine with the given ID,
// used as context for habit suggestions. Missing neighbors are empty.
func (s *Store) Neighbors(id string) (model.SuggestionRequest, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.SuggestionRequest{}, fmt.Errorf("routine %s: %w", id, common.ErrNotFound)
	}
	req := model.SuggestionRequest{PrevTask: s.routines[idx].Task}
	if idx+1 < len(s.routines) {
		req.NextTask = s.routines[idx+1].Task
	}
	return req, nil
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.routines {
		if r.ID == id {
			return i
		}
	}
	return -1
}
