package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
)

func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <position>",
		Short: "Toggle a routine's completion",
		Args:  cobra.ExactArgs(1),
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

			r, err := routineAt(s, args[0])
			if err != nil {
				return err
			}

			done, err := s.ToggleDone(r.ID)
			if err != nil {
				return fmt.Errorf("failed to toggle completion: %w", err)
			}

			if err := saveStore(ctx, st, cfg, s); err != nil {
				return err
			}

			if done {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%q 완료!", r.DisplayTask())))
			} else {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("%q 완료 취소", r.DisplayTask())))
			}
			return nil
		},
	}
}
