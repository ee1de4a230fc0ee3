package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
)

func rateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <position> <rating>",
		Short: "Rate a routine's satisfaction",
		Long:  `Record a satisfaction rating for a routine. The rating can be set or changed whether or not the routine is marked done.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()

			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid rating %q: expected a number", args[1])
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

			r, err := routineAt(s, args[0])
			if err != nil {
				return err
			}

			if err := s.SetRating(r.ID, rating); err != nil {
				return fmt.Errorf("failed to set rating: %w", err)
			}

			if err := saveStore(ctx, st, cfg, s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%q 만족도 %d/%d", r.DisplayTask(), rating, s.Scale())))
			return nil
		},
	}
}
