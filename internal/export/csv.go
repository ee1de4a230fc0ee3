// Package export serializes a routine store snapshot into CSV text suitable
// for direct file download.
package export

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/minjae-dev/habitflow/internal/model"
	"github.com/minjae-dev/habitflow/internal/stats"
)

// RoutineHeader is the column order of the routine section.
var RoutineHeader = []string{"Day", "Start", "End", "Task", "Done", "Rating", "IsHabit"}

// Options controls which sections appear in the export.
type Options struct {
	// Now anchors the attendance window; the zero value means time.Now().
	Now time.Time
	// AttendanceDays is the attendance window length; 0 uses the default.
	AttendanceDays int
	// IncludeDescription appends the Description column to routine rows.
	IncludeDescription bool
	// IncludeAttendance appends the attendance series as its own section.
	IncludeAttendance bool
	// IncludeSummary appends the trend summary row as its own section.
	IncludeSummary bool
}

// CSV renders the snapshot as CSV text. Output is deterministic for a fixed
// snapshot and Options; an empty snapshot yields header-only text. Optional
// sections are appended after a blank separator line, each with its own
// header, never interleaved with routine rows.
func CSV(routines []model.Routine, opts Options) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := RoutineHeader
	if opts.IncludeDescription {
		header = append(append([]string{}, RoutineHeader...), "Description")
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range routines {
		row := []string{
			r.Day,
			r.Start,
			r.End,
			r.Task,
			yesNo(r.Done),
			strconv.Itoa(r.Rating),
			yesNo(r.IsHabit),
		}
		if opts.IncludeDescription {
			row = append(row, r.Description)
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write routine row: %w", err)
		}
	}

	if opts.IncludeAttendance {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		if err := writeSeparator(w); err != nil {
			return "", err
		}
		if err := w.Write([]string{"Date", "AttendanceCount"}); err != nil {
			return "", fmt.Errorf("failed to write attendance header: %w", err)
		}
		for _, p := range stats.Attendance(routines, now, opts.AttendanceDays) {
			if err := w.Write([]string{p.Date, strconv.Itoa(p.Count)}); err != nil {
				return "", fmt.Errorf("failed to write attendance row: %w", err)
			}
		}
	}

	if opts.IncludeSummary {
		if err := writeSeparator(w); err != nil {
			return "", err
		}
		if err := w.Write([]string{"Total", "Done", "CompletionRate", "AvgSatisfaction"}); err != nil {
			return "", fmt.Errorf("failed to write summary header: %w", err)
		}
		s := stats.Summarize(routines)
		row := []string{
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Done),
			strconv.Itoa(s.CompletionRate),
			strconv.FormatFloat(s.AvgSatisfaction, 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return sb.String(), nil
}

// writeSeparator emits the blank line between sections.
func writeSeparator(w *csv.Writer) error {
	if err := w.Write([]string{""}); err != nil {
		return fmt.Errorf("failed to write section separator: %w", err)
	}
	return nil
}

// Filename builds the download filename for an export. The timestamp is a
// presentation detail owned here by the caller side, not baked into CSV.
func Filename(now time.Time) string {
	return "habit_" + now.Format("2006-01-02") + ".csv"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
