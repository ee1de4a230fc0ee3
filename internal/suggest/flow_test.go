package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-dev/habitflow/internal/common"
	"github.com/minjae-dev/habitflow/internal/model"
)

// stubClient is a canned llm.Client for flow tests.
type stubClient struct {
	err     error
	content string
	calls   int
	onCall  func()
}

func (s *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.onCall != nil {
		s.onCall()
	}
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func TestFlowSuggest(t *testing.T) {
	client := &stubClient{content: "**3분 스트레칭**\n행복한 마음 갖기\n2분 걷기 - 좋아요"}
	flow := NewFlow(client, nil)

	got, err := flow.Suggest(context.Background(), model.SuggestionRequest{PrevTask: "명상", NextTask: "독서"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "3분 스트레칭", got[0].Text)
	assert.Equal(t, "2분 걷기", got[1].Text)
	assert.Equal(t, 1, client.calls)
}

func TestFlowSuggestUpstreamFailure(t *testing.T) {
	client := &stubClient{err: errors.New("OpenAI API error (status 500): boom")}
	flow := NewFlow(client, nil)

	got, err := flow.Suggest(context.Background(), model.SuggestionRequest{PrevTask: "명상"})
	require.NoError(t, err, "collaborator failure degrades, it does not propagate")
	require.Len(t, got, 3)
	assert.Equal(t, "깊은 숨 2분", got[0].Text)
}

func TestFlowSuggestNothingSurvives(t *testing.T) {
	client := &stubClient{content: "행복한 마음 갖기\n긍정적으로 생각하기"}
	flow := NewFlow(client, nil)

	got, err := flow.Suggest(context.Background(), model.SuggestionRequest{PrevTask: "명상"})
	require.NoError(t, err)
	require.NotEmpty(t, got, "an empty suggestion set is never surfaced")
	assert.Len(t, got, 3)
}

func TestFlowSuggestNoContext(t *testing.T) {
	client := &stubClient{content: "unused"}
	flow := NewFlow(client, nil)

	got, err := flow.Suggest(context.Background(), model.SuggestionRequest{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Zero(t, client.calls, "no collaborator call without insertion context")
}

func TestFlowSuggestSupersededByNewerRequest(t *testing.T) {
	client := &stubClient{content: "3분 스트레칭"}
	flow := NewFlow(client, nil)
	// A second request starts while the first one's collaborator call is
	// still in flight.
	client.onCall = func() { flow.Begin() }

	_, err := flow.Suggest(context.Background(), model.SuggestionRequest{PrevTask: "명상"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrStaleResponse)
}

func TestFlowStaleResponseDiscarded(t *testing.T) {
	flow := NewFlow(&stubClient{}, nil)

	first := flow.Begin()
	second := flow.Begin()

	_, ok := flow.Apply(first, "3분 스트레칭")
	assert.False(t, ok, "response for a superseded request is discarded")

	got, ok := flow.Apply(second, "3분 스트레칭")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "3분 스트레칭", got[0].Text)

	// Applying the same stale generation again stays a no-op.
	_, ok = flow.Apply(first, "물 한잔")
	assert.False(t, ok)
}
