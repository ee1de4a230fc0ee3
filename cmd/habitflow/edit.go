package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
)

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <position> <new task>",
		Short: "Rename a routine's task",
		Args:  cobra.MinimumNArgs(2),
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

			if err := s.EditTask(r.ID, task); err != nil {
				return fmt.Errorf("failed to edit routine: %w", err)
			}

			if err := saveStore(ctx, st, cfg, s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%q → %q", r.DisplayTask(), task)))
			return nil
		},
	}
}
