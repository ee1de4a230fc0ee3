package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/minjae-dev/habitflow/internal/cli"
	"github.com/minjae-dev/habitflow/internal/common"
	"github.com/minjae-dev/habitflow/internal/config"
	"github.com/minjae-dev/habitflow/internal/llm"
	"github.com/minjae-dev/habitflow/internal/model"
	"github.com/minjae-dev/habitflow/internal/suggest"
)

func suggestCmd() *cobra.Command {
	var accept bool

	cmd := &cobra.Command{
		Use:   "suggest <position>",
		Short: "Suggest micro-habits for the gap after a routine",
		Long: `Ask the AI collaborator for short wellbeing habits that fit between the
routine at the given position and the one after it. Pick one to insert it
into the schedule, or press enter to keep the list as it is.

When no API key is configured the built-in candidates are offered instead.`,
		Args: cobra.ExactArgs(1),
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

			req, err := s.Neighbors(r.ID)
			if err != nil {
				return fmt.Errorf("failed to resolve neighbors: %w", err)
			}

			suggestions, err := fetchSuggestions(cmd, cfg, req)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("습관 추천"))
			fmt.Println()
			for i, sg := range suggestions {
				fmt.Printf("  %d. %s %s\n", i+1, sg.Emoji, sg.Text)
				fmt.Printf("     %s\n", cli.SubtleStyle.Render(sg.Description))
			}
			fmt.Println()

			chosen, err := chooseSuggestion(cmd, suggestions, accept)
			if err != nil {
				return err
			}
			if chosen == nil {
				fmt.Println(cli.InfoStyle.Render("No habit added."))
				return nil
			}

			h := model.NewHabit(r.Day, chosen.Text)
			h.Emoji = chosen.Emoji
			h.Description = chosen.Description
			if err := s.InsertAfter(r.ID, h); err != nil {
				return fmt.Errorf("failed to insert habit: %w", err)
			}

			if err := saveStore(ctx, st, cfg, s); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %s 추가 완료", chosen.Emoji, chosen.Text)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&accept, "accept", false, "insert the first suggestion without prompting")

	return cmd
}

// fetchSuggestions runs the suggestion flow with a spinner. A missing API key
// or a collaborator failure falls back to the built-in candidates rather than
// erroring; suggest should always offer something.
func fetchSuggestions(cmd *cobra.Command, cfg config.Config, req model.SuggestionRequest) ([]model.Suggestion, error) {
	if cfg.LLM.APIKey == "" {
		return suggest.Fallback(3), nil
	}

	client, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return nil, common.NewUserError("AI 설정이 올바르지 않아요. llm 설정을 확인해 주세요.", err)
	}

	flow := suggest.NewFlow(client, suggest.NewNormalizer(suggest.Config{
		MaxLen: cfg.SuggestionMaxLen,
	}))

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription(cli.RobotIcon+" Thinking..."),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	spin := make(chan struct{})
	go func() {
		for {
			select {
			case <-spin:
				return
			default:
				_ = bar.Add(1)
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()

	suggestions, err := flow.Suggest(cmd.Context(), req)
	close(spin)
	_ = bar.Finish()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return suggest.Fallback(3), nil
	}
	return suggestions, nil
}

// chooseSuggestion prompts for a 1-based pick; empty input means none.
func chooseSuggestion(cmd *cobra.Command, suggestions []model.Suggestion, acceptFirst bool) (*model.Suggestion, error) {
	if len(suggestions) == 0 {
		return nil, nil
	}
	if acceptFirst {
		return &suggestions[0], nil
	}

	fmt.Print(cli.FormatPrompt(fmt.Sprintf("추가할 습관 번호 (1-%d, enter to skip): ", len(suggestions))))

	reader := cli.NewNonBlockingReader(os.Stdin)
	line, err := reader.ReadLine(cmd.Context())
	if err != nil {
		return nil, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	pick, err := strconv.Atoi(line)
	if err != nil || pick < 1 || pick > len(suggestions) {
		return nil, fmt.Errorf("invalid choice %q", line)
	}
	return &suggestions[pick-1], nil
}
