package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
)

func moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a routine to a new position",
		Long:  `Move the routine at one list position to another. Everything in between shifts by one; no entries are lost or duplicated.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()

			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q: expected a number", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q: expected a number", args[1])
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

			if err := s.Reorder(from-1, to-1); err != nil {
				return fmt.Errorf("failed to move routine: %w", err)
			}

			if err := saveStore(ctx, st, cfg, s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d번 → %d번 이동 완료", from, to)))
			return nil
		},
	}
}
