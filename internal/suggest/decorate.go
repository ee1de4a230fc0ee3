package suggest

import (
	"strings"

	"github.com/minjae-dev/habitflow/internal/model"
)

// defaultEmoji decorates habits matching no keyword.
const defaultEmoji = "🎯"

// habitEmojis maps habit keywords to their decoration, checked in order.
var habitEmojis = []struct {
	keyword string
	emoji   string
}{
	{"숨", "💨"},
	{"산책", "🚶‍♂️"},
	{"스트레칭", "🤸‍♀️"},
	{"물", "💧"},
	{"명상", "🧘‍♂️"},
	{"운동", "🏃‍♂️"},
	{"독서", "📚"},
	{"휴식", "😌"},
}

// fallbackCandidates is the built-in suggestion list used whenever the
// collaborator fails or normalization rejects every line. Callers never
// surface an empty suggestion set.
var fallbackCandidates = []string{"깊은 숨 2분", "물 한잔", "짧은 산책", "스트레칭"}

// Decorate attaches the keyword emoji and a one-line description to a
// normalized habit text.
func Decorate(text string) model.Suggestion {
	emoji := defaultEmoji
	for _, he := range habitEmojis {
		if strings.Contains(text, he.keyword) {
			emoji = he.emoji
			break
		}
	}
	return model.Suggestion{
		Text:        text,
		Emoji:       emoji,
		Description: emoji + " " + text + " - 건강과 집중에 도움을 줍니다.",
	}
}

// Fallback returns the first n built-in candidates, decorated. n values
// outside the candidate range return the full list.
func Fallback(n int) []model.Suggestion {
	if n <= 0 || n > len(fallbackCandidates) {
		n = len(fallbackCandidates)
	}
	out := make([]model.Suggestion, 0, n)
	for _, c := range fallbackCandidates[:n] {
		out = append(out, Decorate(c))
	}
	return out
}
