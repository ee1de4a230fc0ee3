package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-dev/habitflow/internal/model"
)

func TestCompletionByDay(t *testing.T) {
	routines := []model.Routine{
		{Day: "월", Done: true, Rating: 8},
		{Day: "월", Done: false, Rating: 0},
		{Day: "화", Done: true},
		{Day: "수", Done: true},
		{Day: "수", Done: true},
		{Day: "수", Done: false},
	}

	got := CompletionByDay(routines)
	require.Len(t, got, 7)

	byDay := make(map[string]int, len(got))
	for _, dc := range got {
		byDay[dc.Day] = dc.Rate
	}
	assert.Equal(t, 50, byDay["월"])
	assert.Equal(t, 100, byDay["화"])
	assert.Equal(t, 67, byDay["수"], "2/3 rounds to 67")
	assert.Equal(t, 0, byDay["목"], "day without entries reports 0")
	assert.Equal(t, 0, byDay["일"])
}

func TestCompletionByDayBounds(t *testing.T) {
	routines := []model.Routine{
		{Day: "월", Done: true},
		{Day: "화"},
		{Day: "토", Done: true},
		{Day: "토", Done: true},
	}
	for _, dc := range CompletionByDay(routines) {
		assert.GreaterOrEqual(t, dc.Rate, 0)
		assert.LessOrEqual(t, dc.Rate, 100)
	}
}

func TestCompletionByDayEmpty(t *testing.T) {
	got := CompletionByDay(nil)
	require.Len(t, got, 7)
	for i, dc := range got {
		assert.Equal(t, model.Weekdays[i], dc.Day)
		assert.Zero(t, dc.Rate)
	}
}

func TestSatisfactionByDay(t *testing.T) {
	routines := []model.Routine{
		{Day: "월", Done: true, Rating: 7},
		{Day: "월", Done: true, Rating: 8},
		{Day: "월", Done: false, Rating: 3}, // not done, excluded
		{Day: "화", Done: false, Rating: 9},
	}

	got := SatisfactionByDay(routines)
	byDay := make(map[string]int, len(got))
	for _, ds := range got {
		byDay[ds.Day] = ds.Average
	}
	assert.Equal(t, 8, byDay["월"], "(7+8)/2 rounds to 8")
	assert.Equal(t, 0, byDay["화"], "no completed entries yields 0")
}

func TestDistribution(t *testing.T) {
	routines := []model.Routine{
		{Task: "2분 걷기", IsHabit: true},
		{Task: "스트레칭", IsHabit: true},
		{Task: "명상 3분", IsHabit: true},
		{Task: "영어 단어 외우기", IsHabit: true},
		{Task: "책상 정리", IsHabit: true},
		{Task: "엽서 쓰기", IsHabit: true}, // no keyword, falls into 기타
		{Task: "걷기 모임", IsHabit: false}, // not a habit, ignored
	}

	got := Distribution(routines)
	require.Len(t, got, len(Categories))

	byName := make(map[string]int, len(got))
	total := 0
	for _, cc := range got {
		byName[cc.Category] = cc.Count
		total += cc.Count
	}
	assert.Equal(t, 2, byName["신체"])
	assert.Equal(t, 1, byName["정신"])
	assert.Equal(t, 1, byName["학습"])
	assert.Equal(t, 1, byName["업무"])
	assert.Equal(t, 1, byName[OtherCategory])
	assert.Equal(t, 6, total, "counts sum to the habit entry count")
}

func TestClassifyPriorityOrder(t *testing.T) {
	// 물 (physical) appears before any mental keyword in the checklist, so a
	// task matching both buckets lands in the first one.
	assert.Equal(t, "신체", Classify("물 마시며 감사 일기"))
	assert.Equal(t, OtherCategory, Classify("엽서 쓰기"))
}

func TestDistributionAllCategoriesPresent(t *testing.T) {
	got := Distribution(nil)
	require.Len(t, got, len(Categories))
	for i, cc := range got {
		assert.Equal(t, Categories[i].Name, cc.Category)
		assert.Zero(t, cc.Count)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		routines []model.Routine
		wantRate int
		wantAvg  float64
	}{
		{
			name: "mixed completion",
			routines: []model.Routine{
				{Done: true, Rating: 8},
				{Done: true, Rating: 7},
				{Done: false},
			},
			wantRate: 67,
			wantAvg:  7.5,
		},
		{
			name:     "empty store",
			routines: nil,
			wantRate: 0,
			wantAvg:  0,
		},
		{
			name: "nothing done",
			routines: []model.Routine{
				{Done: false, Rating: 9},
			},
			wantRate: 0,
			wantAvg:  0,
		},
		{
			name: "average keeps one decimal",
			routines: []model.Routine{
				{Done: true, Rating: 8},
				{Done: true, Rating: 7},
				{Done: true, Rating: 7},
			},
			wantRate: 100,
			wantAvg:  7.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.routines)
			assert.Equal(t, tt.wantRate, got.CompletionRate)
			assert.InDelta(t, tt.wantAvg, got.AvgSatisfaction, 0.001)
		})
	}
}

func TestAttendance(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) // a Monday
	routines := []model.Routine{
		{Day: "월", Done: true},
		{Day: "월", Done: true},
		{Day: "화", Done: false},
	}

	got := Attendance(routines, now, 90)
	require.Len(t, got, 90)

	start := now.AddDate(0, -3, 0)
	assert.Equal(t, start.Format("2006-01-02"), got[0].Date)
	assert.Equal(t, start.AddDate(0, 0, 89).Format("2006-01-02"), got[89].Date)

	// The series replays weekday-aggregated counts: every Monday in the
	// window reports 2, every other day 0.
	for i, p := range got {
		date := start.AddDate(0, 0, i)
		if model.WeekdayForDate(date) == "월" {
			assert.Equal(t, 2, p.Count, "date %s", p.Date)
		} else {
			assert.Zero(t, p.Count, "date %s", p.Date)
		}
	}
}

func TestAttendanceDefaultWindow(t *testing.T) {
	got := Attendance(nil, time.Now(), 0)
	assert.Len(t, got, DefaultAttendanceDays)
}
