package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
	"github.com/minjae-dev/habitflow/internal/model"
)

func addCmd() *cobra.Command {
	var (
		day     string
		start   string
		end     string
		asHabit bool
	)

	cmd := &cobra.Command{
		Use:   "add <task>",
		Short: "Add a routine or habit",
		Long: `Add a scheduled routine (with start/end times) or an unscheduled
micro-habit to the list. The day defaults to today.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()
			task := strings.Join(args, " ")

			if day == "" {
				day = todayWeekday()
			}

			st, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			s, err := loadStore(ctx, st, cfg)
			if err != nil {
				return err
			}

			var r model.Routine
			if asHabit {
				r = model.NewHabit(day, task)
			} else {
				r = model.NewRoutine(day, start, end, task)
			}
			if err := s.Add(r); err != nil {
				return fmt.Errorf("failed to add routine: %w", err)
			}

			if err := saveStore(ctx, st, cfg, s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s에 %q 추가 완료", day, r.DisplayTask())))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "weekday symbol (월..일, default: today)")
	cmd.Flags().StringVar(&start, "start", "08:00", "start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "09:00", "end time (HH:MM)")
	cmd.Flags().BoolVar(&asHabit, "habit", false, "add as an unscheduled micro-habit")

	return cmd
}
