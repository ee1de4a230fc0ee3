package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-dev/habitflow/internal/common"
	"github.com/minjae-dev/habitflow/internal/model"
)

func seedStore(t *testing.T, tasks ...string) *Store {
	t.Helper()
	s := New(model.DefaultRatingScale)
	for _, task := range tasks {
		require.NoError(t, s.Add(model.NewRoutine("월", "08:00", "09:00", task)))
	}
	return s
}

func TestStoreAdd(t *testing.T) {
	s := seedStore(t, "명상", "독서")
	assert.Equal(t, 2, s.Len())

	snap := s.Snapshot()
	assert.Equal(t, "명상", snap[0].Task)
	assert.Equal(t, "독서", snap[1].Task)

	err := s.Add(model.Routine{ID: snap[0].ID, Day: "월", Task: "중복"})
	require.ErrorIs(t, err, common.ErrDuplicateEntry)

	err = s.Add(model.NewRoutine("월", "", "", "  "))
	require.ErrorIs(t, err, model.ErrEmptyTask)
	assert.Equal(t, 2, s.Len())
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := seedStore(t, "명상")
	snap := s.Snapshot()
	snap[0].Task = "변조"

	again := s.Snapshot()
	assert.Equal(t, "명상", again[0].Task)
}

func TestStoreInsertAfter(t *testing.T) {
	s := seedStore(t, "명상", "독서")
	first := s.Snapshot()[0]

	habit := model.NewHabit("월", "스트레칭")
	require.NoError(t, s.InsertAfter(first.ID, habit))

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "명상", snap[0].Task)
	assert.Equal(t, "스트레칭", snap[1].Task)
	assert.True(t, snap[1].IsHabit)
	assert.Empty(t, snap[1].Start, "habit entries carry no schedule")
	assert.Equal(t, "독서", snap[2].Task)

	err := s.InsertAfter("missing", model.NewHabit("월", "물 한잔"))
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStoreToggleDone(t *testing.T) {
	s := seedStore(t, "명상")
	id := s.Snapshot()[0].ID

	done, err := s.ToggleDone(id)
	require.NoError(t, err)
	assert.True(t, done)

	done, err = s.ToggleDone(id)
	require.NoError(t, err)
	assert.False(t, done)

	_, err = s.ToggleDone("missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStoreSetRating(t *testing.T) {
	s := New(5)
	r := model.NewRoutine("월", "08:00", "09:00", "명상")
	require.NoError(t, s.Add(r))

	require.NoError(t, s.SetRating(r.ID, 5))
	got, err := s.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)

	err = s.SetRating(r.ID, 6)
	require.ErrorIs(t, err, model.ErrInvalidRating)

	err = s.SetRating(r.ID, -1)
	require.ErrorIs(t, err, model.ErrInvalidRating)
}

func TestStoreEditTask(t *testing.T) {
	s := seedStore(t, "명상")
	id := s.Snapshot()[0].ID

	require.NoError(t, s.EditTask(id, "아침 명상"))
	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "아침 명상", got.Task)

	require.ErrorIs(t, s.EditTask(id, "  "), model.ErrEmptyTask)
}

func TestStoreDelete(t *testing.T) {
	s := seedStore(t, "명상", "독서", "산책")
	id := s.Snapshot()[1].ID

	require.NoError(t, s.Delete(id))
	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "명상", snap[0].Task)
	assert.Equal(t, "산책", snap[1].Task)

	require.ErrorIs(t, s.Delete(id), common.ErrNotFound)
}

func TestStoreReorder(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		wantErr  bool
	}{
		{name: "move first to last", from: 0, to: 2, want: []string{"b", "c", "a"}},
		{name: "move last to first", from: 2, to: 0, want: []string{"c", "a", "b"}},
		{name: "noop", from: 1, to: 1, want: []string{"a", "b", "c"}},
		{name: "out of range", from: 0, to: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seedStore(t, "a", "b", "c")
			err := s.Reorder(tt.from, tt.to)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			var got []string
			for _, r := range s.Snapshot() {
				got = append(got, r.Task)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStoreNeighbors(t *testing.T) {
	s := seedStore(t, "명상", "독서")
	snap := s.Snapshot()

	req, err := s.Neighbors(snap[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "명상", req.PrevTask)
	assert.Equal(t, "독서", req.NextTask)

	req, err = s.Neighbors(snap[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "독서", req.PrevTask)
	assert.Empty(t, req.NextTask)
}

func TestStoreReplace(t *testing.T) {
	s := New(0)
	assert.Equal(t, model.DefaultRatingScale, s.Scale())

	a := model.NewRoutine("월", "", "", "명상")
	b := model.NewRoutine("화", "", "", "독서")
	require.NoError(t, s.Replace([]model.Routine{a, b}))
	assert.Equal(t, 2, s.Len())

	err := s.Replace([]model.Routine{a, a})
	require.ErrorIs(t, err, common.ErrDuplicateEntry)
}
