package suggest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/minjae-dev/habitflow/internal/common"
	"github.com/minjae-dev/habitflow/internal/llm"
	"github.com/minjae-dev/habitflow/internal/model"
	"github.com/minjae-dev/habitflow/internal/service"
)

const systemPrompt = "You are a helpful assistant that recommends short wellness habits."

// fallbackCount is how many built-in candidates a degraded request returns.
const fallbackCount = 3

// Flow drives the suggestion pipeline: prompt assembly, the collaborator
// call, and normalization. Upstream failure and empty results both degrade
// to the built-in candidates; Suggest never returns an empty set with a nil
// error.
type Flow struct {
	client    llm.Client
	norm      *Normalizer
	retryOpts service.RetryOptions
	gen       atomic.Uint64
}

// NewFlow creates a suggestion flow. A nil normalizer gets the defaults.
func NewFlow(client llm.Client, norm *Normalizer) *Flow {
	if norm == nil {
		norm = NewNormalizer(Config{})
	}
	return &Flow{
		client: client,
		norm:   norm,
		retryOpts: service.RetryOptions{
			MaxAttempts:  2,
			InitialDelay: 50 * time.Millisecond,
			MaxDelay:     time.Second,
		},
	}
}

// Begin starts a new suggestion request and returns its generation number.
// A later Begin supersedes every earlier pending request: applying a
// response from a superseded generation is a no-op.
func (f *Flow) Begin() uint64 {
	return f.gen.Add(1)
}

// Apply normalizes a raw collaborator response for the given generation.
// The second return is false when a newer request has started since, in
// which case the result must be discarded.
func (f *Flow) Apply(gen uint64, raw string) ([]model.Suggestion, bool) {
	if gen != f.gen.Load() {
		return nil, false
	}
	return f.decorate(f.norm.Normalize(splitLines(raw))), true
}

// Suggest runs one full suggestion request for the given insertion context.
func (f *Flow) Suggest(ctx context.Context, req model.SuggestionRequest) ([]model.Suggestion, error) {
	gen := f.Begin()

	if req.Context() == "" {
		return Fallback(fallbackCount), nil
	}

	raw, err := f.complete(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("suggestion collaborator failed, using fallback candidates", "error", err)
		return Fallback(fallbackCount), nil
	}

	suggestions, ok := f.Apply(gen, raw)
	if !ok {
		// A newer request superseded this one; its result will be used
		// instead.
		return nil, fmt.Errorf("suggestion request %d: %w", gen, common.ErrStaleResponse)
	}
	if len(suggestions) == 0 {
		slog.Debug("no lines survived normalization, using fallback candidates")
		return Fallback(fallbackCount), nil
	}
	return suggestions, nil
}

// complete calls the collaborator, retrying transient failures.
func (f *Flow) complete(ctx context.Context, req model.SuggestionRequest) (string, error) {
	var raw string
	err := common.WithRetry(ctx, func() error {
		out, err := f.client.Complete(ctx, systemPrompt, userPrompt(req))
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		raw = out
		return nil
	}, f.retryOpts)
	return raw, err
}

func (f *Flow) decorate(texts []string) []model.Suggestion {
	out := make([]model.Suggestion, 0, len(texts))
	for _, t := range texts {
		out = append(out, Decorate(t))
	}
	return out
}

func userPrompt(req model.SuggestionRequest) string {
	return fmt.Sprintf(
		"사용자의 이전 행동과 다음 행동: %s\n"+
			"이 행동들 사이에 자연스럽게 연결할 수 있는 3개 이상의 5분 이내에 할 수 있는 웰빙 습관을 명사형으로 추천해 주세요. "+
			"각 습관은 20자 이내로 간결하며, 구체적인 행동과 시간(몇 분, 몇 회)을 포함하세요. 예시: '2분 깊은 숨쉬기'",
		req.Context())
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
