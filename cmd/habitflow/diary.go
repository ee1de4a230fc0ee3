package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/common"
	"github.com/minjae-dev/habitflow/internal/config"
	"github.com/minjae-dev/habitflow/internal/diary"
	"github.com/minjae-dev/habitflow/internal/llm"
)

func diaryCmd() *cobra.Command {
	var (
		day        string
		withPrompt bool
	)

	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Write a short diary entry from today's completed routines",
		Long: `Summarize the day's completed routines into a few warm sentences.
Needs at least five completed entries for the day. Without an API key the
built-in template summary is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.Load()

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

			tasks := diary.CompletedTasks(s.Snapshot(), day)

			var client llm.Client
			if cfg.LLM.APIKey != "" {
				client, err = llm.NewClient(cfg.LLM)
				if err != nil {
					return common.NewUserError("AI 설정이 올바르지 않아요. llm 설정을 확인해 주세요.", err)
				}
			}

			entry, err := diary.NewWriter(client).Summarize(ctx, tasks)
			if err != nil {
				if errors.Is(err, diary.ErrNotEnoughEntries) {
					fmt.Println(cli.FormatWarning(fmt.Sprintf(
						"오늘 완료한 일이 %d개뿐이에요. %d개 이상 완료하면 일기를 쓸 수 있어요.",
						len(tasks), diary.MinEntries)))
					return nil
				}
				return fmt.Errorf("failed to write diary: %w", err)
			}

			fmt.Println(cli.RenderBox(cli.DiaryIcon+" 오늘의 일기", entry))

			if withPrompt {
				if top, ok := diary.TopRated(s.Snapshot(), day); ok {
					fmt.Println()
					fmt.Println(cli.SubtleStyle.Render(
						"Image prompt: " + diary.ImagePrompt(top.DisplayTask(), top.Emoji)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "weekday symbol (월..일, default: today)")
	cmd.Flags().BoolVar(&withPrompt, "image-prompt", false, "also print an illustration prompt for the day")

	return cmd
}
