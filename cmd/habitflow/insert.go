package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
	"github.com/minjae-dev/habitflow/internal/model"
)

func insertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <position> <task>",
		Short: "Insert a habit after an entry",
		Long: `Insert a micro-habit directly after the entry at the given list
position, on the same day. Use this to slot a habit into a gap by hand
instead of going through 'habitflow suggest'.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()
			task := strings.Join(args[1:], " ")

			st, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			s, err := loadStore(ctx, st, cfg)
			if err != nil {
				return err
			}

			r, err := routineAt(s, args[0])
			if err != nil {
				return err
			}

			h := model.NewHabit(r.Day, task)
			if err := s.InsertAfter(r.ID, h); err != nil {
				return fmt.Errorf("failed to insert habit: %w", err)
			}

			if err := saveStore(ctx, st, cfg, s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%q 다음에 %s %q 추가 완료",
				r.DisplayTask(), cli.HabitIcon, h.DisplayTask())))
			return nil
		},
	}
}
