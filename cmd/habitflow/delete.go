package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
)

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete a routine",
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

			if !force {
				reader := cli.NewNonBlockingReader(os.Stdin)
				ok, err := cli.Confirm(ctx, reader, os.Stdout,
					fmt.Sprintf("Delete %q?", r.DisplayTask()))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Cancelled."))
					return nil
				}
			}

			if err := s.Delete(r.ID); err != nil {
				return fmt.Errorf("failed to delete routine: %w", err)
			}

			if err := saveStore(ctx, st, cfg, s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%q 삭제 완료", r.DisplayTask())))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}
