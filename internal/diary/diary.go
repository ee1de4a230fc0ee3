// Package diary builds the per-day encouragement diary from completed
// routines: a short warm summary, written by the text collaborator when
// available and by a built-in template otherwise, plus the prompt text for
// the decorative illustration.
package diary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/minjae-dev/habitflow/internal/common"
	"github.com/minjae-dev/habitflow/internal/llm"
	"github.com/minjae-dev/habitflow/internal/model"
	"github.com/minjae-dev/habitflow/internal/service"
)

// MinEntries is the number of completed tasks a day needs before a diary
// entry is written for it.
const MinEntries = 5

// ErrNotEnoughEntries is returned when a day has too few completed tasks.
var ErrNotEnoughEntries = errors.New("not enough completed entries for a diary")

const diarySystemPrompt = "You are a helpful assistant that writes short, warm diary entries in Korean."

// Writer produces diary summaries, degrading to the built-in template when
// the collaborator fails.
type Writer struct {
	client    llm.Client
	retryOpts service.RetryOptions
}

// NewWriter creates a diary writer. client may be nil, in which case only
// the template summary is used.
func NewWriter(client llm.Client) *Writer {
	return &Writer{
		client: client,
		retryOpts: service.RetryOptions{
			MaxAttempts:  2,
			InitialDelay: 50 * time.Millisecond,
			MaxDelay:     time.Second,
		},
	}
}

// Summarize writes the diary text for a day's completed tasks. Collaborator
// failure is not an error: the template summary is returned instead.
func (w *Writer) Summarize(ctx context.Context, tasks []string) (string, error) {
	if len(tasks) < MinEntries {
		return "", fmt.Errorf("%w: have %d, need %d", ErrNotEnoughEntries, len(tasks), MinEntries)
	}

	if w.client == nil {
		return TemplateSummary(tasks), nil
	}

	var text string
	err := common.WithRetry(ctx, func() error {
		out, err := w.client.Complete(ctx, diarySystemPrompt, diaryPrompt(tasks))
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}
		text = out
		return nil
	}, w.retryOpts)
	if err != nil {
		slog.Warn("diary collaborator failed, using template summary", "error", err)
		return TemplateSummary(tasks), nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return TemplateSummary(tasks), nil
	}
	return text, nil
}

// TemplateSummary is the built-in three-line summary used when no
// collaborator text is available. Empty below the entry threshold.
func TemplateSummary(tasks []string) string {
	if len(tasks) < MinEntries {
		return ""
	}
	firstFive := tasks[:MinEntries]
	return fmt.Sprintf(
		"오늘 당신은 %s 등 다양한 일과를 멋지게 해냈어요.\n"+
			"작은 습관 하나하나가 큰 변화를 만들어가고 있답니다.\n"+
			"이 페이스를 유지하며 행복한 하루하루 보내길 응원할게요!",
		strings.Join(firstFive, ", "))
}

// CompletedTasks collects the task labels of completed routines for one
// weekday, in list order.
func CompletedTasks(routines []model.Routine, day string) []string {
	var tasks []string
	for _, r := range routines {
		if r.Day == day && r.Done {
			tasks = append(tasks, r.DisplayTask())
		}
	}
	return tasks
}

// TopRated returns the highest-rated completed routine for one weekday,
// the subject of the day's illustration. Ties keep the earlier entry; the
// second return is false when the day has no completed entries.
func TopRated(routines []model.Routine, day string) (model.Routine, bool) {
	var best model.Routine
	found := false
	for _, r := range routines {
		if r.Day != day || !r.Done {
			continue
		}
		if !found || r.Rating > best.Rating {
			best = r
			found = true
		}
	}
	return best, found
}

// ImagePrompt builds the illustration prompt for a habit. The image fetch
// itself is a decorative collaborator concern and stays outside this core.
func ImagePrompt(task, emoji string) string {
	return fmt.Sprintf(
		"Color pencil sketch style illustration of %s.\n"+
			"A cozy, gentle scene without humans, showing only objects or actions related to the habit %s.\n"+
			"Soft lighting, pastel tones. Ultra-detailed, warm feeling, no faces, no characters.",
		task, emoji)
}

func diaryPrompt(tasks []string) string {
	return fmt.Sprintf(
		"다음은 사용자의 오늘 달성한 습관 및 일과 목록입니다:\n%s\n\n"+
			"이 내용을 바탕으로 따뜻하고 긍정적인 응원의 메시지와 함께 3줄로 요약된 일기를 작성해 주세요.",
		strings.Join(tasks, ", "))
}
