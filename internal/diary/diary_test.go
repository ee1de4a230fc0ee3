package diary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-dev/habitflow/internal/model"
)

type stubClient struct {
	err     error
	content string
}

func (s *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	return s.content, s.err
}

var fiveTasks = []string{"명상", "스트레칭", "물 한잔", "독서", "산책"}

func TestSummarize(t *testing.T) {
	w := NewWriter(&stubClient{content: "오늘도 수고했어요.\n내일도 화이팅.\n응원합니다."})

	got, err := w.Summarize(context.Background(), fiveTasks)
	require.NoError(t, err)
	assert.Contains(t, got, "수고했어요")
}

func TestSummarizeTooFewEntries(t *testing.T) {
	w := NewWriter(&stubClient{content: "unused"})

	_, err := w.Summarize(context.Background(), []string{"명상", "독서"})
	require.ErrorIs(t, err, ErrNotEnoughEntries)
}

func TestSummarizeDegradesToTemplate(t *testing.T) {
	tests := []struct {
		client *stubClient
		name   string
	}{
		{name: "collaborator error", client: &stubClient{err: errors.New("status 500")}},
		{name: "empty completion", client: &stubClient{content: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(tt.client)
			got, err := w.Summarize(context.Background(), fiveTasks)
			require.NoError(t, err, "collaborator failure degrades, it does not propagate")
			assert.Equal(t, TemplateSummary(fiveTasks), got)
		})
	}
}

func TestSummarizeNilClient(t *testing.T) {
	w := NewWriter(nil)
	got, err := w.Summarize(context.Background(), fiveTasks)
	require.NoError(t, err)
	assert.Equal(t, TemplateSummary(fiveTasks), got)
}

func TestTemplateSummary(t *testing.T) {
	assert.Empty(t, TemplateSummary([]string{"명상"}))

	got := TemplateSummary(append(fiveTasks, "추가 작업"))
	assert.Contains(t, got, "명상, 스트레칭, 물 한잔, 독서, 산책")
	assert.NotContains(t, got, "추가 작업", "only the first five tasks are named")
}

func TestCompletedTasks(t *testing.T) {
	routines := []model.Routine{
		{Day: "월", Task: "명상", Done: true},
		{Day: "월", Task: "독서", Done: false},
		{Day: "화", Task: "산책", Done: true},
		{Day: "월", Task: "(습관)- 스트레칭", Done: true, IsHabit: true},
	}

	got := CompletedTasks(routines, "월")
	assert.Equal(t, []string{"명상", "스트레칭"}, got)
}

func TestTopRated(t *testing.T) {
	routines := []model.Routine{
		{Day: "월", Task: "명상", Done: true, Rating: 6, Emoji: "🧘‍♂️"},
		{Day: "월", Task: "산책", Done: true, Rating: 9, Emoji: "🚶‍♂️"},
		{Day: "월", Task: "독서", Done: false, Rating: 10},
		{Day: "화", Task: "운동", Done: true, Rating: 10},
	}

	top, ok := TopRated(routines, "월")
	require.True(t, ok)
	assert.Equal(t, "산책", top.Task, "not-done and other-day entries are ignored")
	assert.Equal(t, "🚶‍♂️", top.Emoji)
}

func TestTopRatedTiesKeepEarlier(t *testing.T) {
	routines := []model.Routine{
		{Day: "월", Task: "명상", Done: true, Rating: 7},
		{Day: "월", Task: "산책", Done: true, Rating: 7},
	}

	top, ok := TopRated(routines, "월")
	require.True(t, ok)
	assert.Equal(t, "명상", top.Task)
}

func TestTopRatedNoCompletedEntries(t *testing.T) {
	_, ok := TopRated([]model.Routine{{Day: "월", Task: "명상"}}, "월")
	assert.False(t, ok)
}

func TestImagePrompt(t *testing.T) {
	got := ImagePrompt("물 한잔", "💧")
	assert.Contains(t, got, "물 한잔")
	assert.Contains(t, got, "💧")
	assert.Contains(t, got, "Color pencil sketch")
}
