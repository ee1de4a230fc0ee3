package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/config"
	"github.com/minjae-dev/habitflow/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		output      string
		attendance  bool
		summary     bool
		description bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export routines to CSV",
		Long: `Write the routine list as a CSV file. Optional sections (attendance
series, trend summary) are appended after blank separator lines. The
default filename carries today's date, habit_YYYY-MM-DD.csv.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()
			now := time.Now()

			st, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			s, err := loadStore(ctx, st, cfg)
			if err != nil {
				return err
			}

			text, err := export.CSV(s.Snapshot(), export.Options{
				Now:                now,
				AttendanceDays:     cfg.AttendanceDays,
				IncludeDescription: description,
				IncludeAttendance:  attendance,
				IncludeSummary:     summary,
			})
			if err != nil {
				return fmt.Errorf("failed to render CSV: %w", err)
			}

			if output == "" {
				output = export.Filename(now)
			}
			if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d routines to %s", s.Len(), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: habit_YYYY-MM-DD.csv)")
	cmd.Flags().BoolVar(&attendance, "attendance", false, "append the attendance section")
	cmd.Flags().BoolVar(&summary, "summary", false, "append the trend summary section")
	cmd.Flags().BoolVar(&description, "description", false, "include the Description column")

	return cmd
}
