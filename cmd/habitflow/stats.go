package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
	"github.com/minjae-dev/habitflow/internal/stats"
)

func statsCmd() *cobra.Command {
	var showAttendance bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion and satisfaction statistics",
		Long: `Show per-weekday completion rates, average satisfaction over completed
entries, the habit category distribution, and a one-row trend summary.
All numbers are recomputed from the current list on every run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()

			st, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			s, err := loadStore(ctx, st, cfg)
			if err != nil {
				return err
			}

			snap := s.Snapshot()
			if len(snap) == 0 {
				fmt.Println(cli.InfoStyle.Render("No routines yet. Add one with 'habitflow add'."))
				return nil
			}

			fmt.Println(cli.FormatTitle("통계"))
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

			fmt.Fprintln(w, cli.ChartIcon+" 요일별 달성률")
			fmt.Fprintln(w, "Day\tRate")
			for _, dc := range stats.CompletionByDay(snap) {
				fmt.Fprintf(w, "%s\t%s\n", dc.Day, completionBar(dc.Rate))
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, cli.ChartIcon+" 요일별 만족도")
			fmt.Fprintln(w, "Day\tAverage")
			for _, ds := range stats.SatisfactionByDay(snap) {
				avg := "-"
				if ds.Average > 0 {
					avg = fmt.Sprintf("%d/%d", ds.Average, s.Scale())
				}
				fmt.Fprintf(w, "%s\t%s\n", ds.Day, avg)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, cli.HabitIcon+" 습관 카테고리")
			fmt.Fprintln(w, "Category\tCount")
			for _, cc := range stats.Distribution(snap) {
				fmt.Fprintf(w, "%s\t%d\n", cc.Category, cc.Count)
			}
			fmt.Fprintln(w)

			sum := stats.Summarize(snap)
			fmt.Fprintln(w, "요약")
			fmt.Fprintf(w, "완료\t%d/%d (%d%%)\n", sum.Done, sum.Total, sum.CompletionRate)
			fmt.Fprintf(w, "평균 만족도\t%.1f\n", sum.AvgSatisfaction)

			if showAttendance {
				fmt.Fprintln(w)
				fmt.Fprintln(w, "출석")
				for _, p := range stats.Attendance(snap, time.Now(), cfg.AttendanceDays) {
					if p.Count == 0 {
						continue
					}
					fmt.Fprintf(w, "%s\t%d\n", p.Date, p.Count)
				}
			}

			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&showAttendance, "attendance", false, "include the attendance series (non-zero days only)")

	return cmd
}

// completionBar renders a rate as a small text gauge plus the percentage.
func completionBar(rate int) string {
	const width = 10
	filled := rate * width / 100
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return fmt.Sprintf("%s %d%%", bar, rate)
}
