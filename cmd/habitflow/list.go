package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
)

func listCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List routines and habits",
		Long: `List the stored routines in display order. The printed position is
what the other commands (done, rate, edit, delete, move) accept.`,
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

			fmt.Println(cli.FormatTitle("루틴 목록"))
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "#\tDay\tTime\tTask\tDone\tRating")
			fmt.Fprintln(w, "-\t---\t----\t----\t----\t------")

			for i, r := range snap {
				if day != "" && r.Day != day {
					continue
				}

				timeRange := "-"
				if !r.IsHabit {
					timeRange = r.Start + "~" + r.End
				}

				done := ""
				if r.Done {
					done = cli.SuccessIcon
				}

				rating := "-"
				if r.Done && r.Rating > 0 {
					rating = fmt.Sprintf("%d/%d", r.Rating, s.Scale())
				}

				task := r.DisplayTask()
				if r.IsHabit {
					task = cli.HabitStyle.Render(cli.HabitIcon + " " + task)
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					i+1, r.Day, timeRange, task, done, rating)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "only show entries for this weekday (월..일)")

	return cmd
}
