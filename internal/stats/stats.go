// Package stats computes read-only aggregates over a routine store snapshot.
//
// Every function here is a pure full recompute: the data volumes are tiny and
// a stale cached aggregate would be a worse bug than the recomputation cost.
package stats

import (
	"math"
	"time"

	"github.com/minjae-dev/habitflow/internal/model"
)

// DefaultAttendanceDays is the trailing window length for the attendance series.
const DefaultAttendanceDays = 90

// DayCompletion is the completion percentage for one weekday.
type DayCompletion struct {
	Day  string
	Rate int // 0..100, 0 when the day has no entries
}

// DaySatisfaction is the average rating over completed entries for one weekday.
type DaySatisfaction struct {
	Day     string
	Average int // rounded, 0 when the day has no completed entries
}

// CategoryCount is the habit count for one category bucket.
type CategoryCount struct {
	Category string
	Count    int
}

// Summary aggregates the current period into one row.
type Summary struct {
	AvgSatisfaction float64 // 1 decimal, over completed entries
	CompletionRate  int     // rounded percentage
	Total           int
	Done            int
}

// AttendancePoint is one calendar date in the attendance heatmap series.
type AttendancePoint struct {
	Date  string // YYYY-MM-DD
	Count int
}

// CompletionByDay computes round(100*done/total) per weekday in display order.
// Days with no entries report 0 rather than dividing by zero.
func CompletionByDay(routines []model.Routine) []DayCompletion {
	out := make([]DayCompletion, 0, len(model.Weekdays))
	for _, day := range model.Weekdays {
		var total, done int
		for _, r := range routines {
			if r.Day != day {
				continue
			}
			total++
			if r.Done {
				done++
			}
		}
		rate := 0
		if total > 0 {
			rate = int(math.Round(100 * float64(done) / float64(total)))
		}
		out = append(out, DayCompletion{Day: day, Rate: rate})
	}
	return out
}

// SatisfactionByDay computes the rounded average rating over completed
// entries per weekday, 0 when a day has no completed entries.
func SatisfactionByDay(routines []model.Routine) []DaySatisfaction {
	out := make([]DaySatisfaction, 0, len(model.Weekdays))
	for _, day := range model.Weekdays {
		var count, sum int
		for _, r := range routines {
			if r.Day == day && r.Done {
				count++
				sum += r.Rating
			}
		}
		avg := 0
		if count > 0 {
			avg = int(math.Round(float64(sum) / float64(count)))
		}
		out = append(out, DaySatisfaction{Day: day, Average: avg})
	}
	return out
}

// Distribution classifies habit entries into the fixed category checklist.
// Every category is present in the output even at count 0, and the counts
// sum to the number of IsHabit entries.
func Distribution(routines []model.Routine) []CategoryCount {
	counts := make(map[string]int, len(Categories))
	for _, r := range routines {
		if !r.IsHabit {
			continue
		}
		counts[Classify(r.DisplayTask())]++
	}
	out := make([]CategoryCount, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, CategoryCount{Category: c.Name, Count: counts[c.Name]})
	}
	return out
}

// Summarize folds the whole snapshot into a single current-period row.
// Both figures default to 0 on a zero denominator.
func Summarize(routines []model.Routine) Summary {
	s := Summary{Total: len(routines)}
	var ratingSum int
	for _, r := range routines {
		if r.Done {
			s.Done++
			ratingSum += r.Rating
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(100 * float64(s.Done) / float64(s.Total)))
	}
	if s.Done > 0 {
		s.AvgSatisfaction = math.Round(10*float64(ratingSum)/float64(s.Done)) / 10
	}
	return s
}

// Attendance produces one point per calendar date for a trailing window
// starting three months before now, counting completed routines whose weekday
// matches that date's weekday.
//
// This replays weekday-aggregated completion across the date range instead of
// tracking true per-date completion. The approximation is the documented
// behavior of the heatmap and is kept as-is.
func Attendance(routines []model.Routine, now time.Time, days int) []AttendancePoint {
	if days <= 0 {
		days = DefaultAttendanceDays
	}

	doneByDay := make(map[string]int, len(model.Weekdays))
	for _, r := range routines {
		if r.Done {
			doneByDay[r.Day]++
		}
	}

	start := now.AddDate(0, -3, 0)
	out := make([]AttendancePoint, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		out = append(out, AttendancePoint{
			Date:  date.Format("2006-01-02"),
			Count: doneByDay[model.WeekdayForDate(date)],
		})
	}
	return out
}
