package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/minjae-dev/habitflow/internal/llm"
	"github.com/minjae-dev/habitflow/internal/model"
	"github.com/minjae-dev/habitflow/internal/stats"
	"github.com/minjae-dev/habitflow/internal/suggest"
)

// Config holds the application settings resolved from the config file,
// HABITFLOW_ environment variables, and flags.
type Config struct {
	LLM              llm.Config
	DatabasePath     string
	UserID           string
	RatingScale      int
	AttendanceDays   int
	SuggestionMaxLen int
}

// Load resolves the application configuration from Viper and environment
// variables. Precedence:
// 1. Viper configuration (config file, flags, HABITFLOW_ env vars)
// 2. Direct environment variables (OPENAI_API_KEY)
// 3. Default values
func Load() Config {
	cfg := Config{
		DatabasePath:     DefaultDatabasePath(),
		UserID:           "default",
		RatingScale:      model.DefaultRatingScale,
		AttendanceDays:   stats.DefaultAttendanceDays,
		SuggestionMaxLen: suggest.DefaultMaxLen,
	}

	if v := viper.GetString("storage.path"); v != "" {
		cfg.DatabasePath = ExpandPath(v)
	}
	if v := viper.GetString("user"); v != "" {
		cfg.UserID = v
	}
	if v := viper.GetInt("rating.scale"); v > 0 {
		cfg.RatingScale = v
	}
	if v := viper.GetInt("stats.attendance_days"); v > 0 {
		cfg.AttendanceDays = v
	}
	if v := viper.GetInt("suggestions.max_length"); v > 0 {
		cfg.SuggestionMaxLen = v
	}

	cfg.LLM = llm.Config{
		Provider:    viper.GetString("llm.provider"),
		APIKey:      viper.GetString("llm.api_key"),
		Model:       viper.GetString("llm.model"),
		BaseURL:     viper.GetString("llm.base_url"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg
}
