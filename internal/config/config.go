package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mwhite7112/woodpantry-recipes/internal/clients"
)

// Config is read from the environment. Optional integrations stay disabled
// while their URL is empty.
type Config struct {
	Port     string
	LogLevel slog.Level

	OpenAIAPIKey      string
	CompletionURL     string
	CompletionModel   string
	CompletionTimeout time.Duration
	MockCompletion    bool

	PromptPath string

	RedisURL string
	CacheTTL time.Duration

	RabbitMQURL string
}

// Load builds a Config from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:            envOrDefault("PORT", "8080"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		CompletionURL:   envOrDefault("COMPLETION_URL", clients.DefaultCompletionURL),
		CompletionModel: envOrDefault("COMPLETION_MODEL", "gpt-4o-mini"),
		PromptPath:      os.Getenv("PROMPT_PATH"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RabbitMQURL:     os.Getenv("RABBITMQ_URL"),
	}

	var errs []error

	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	var err error
	if cfg.CompletionTimeout, err = durationEnv("COMPLETION_TIMEOUT", 60*time.Second); err != nil {
		errs = append(errs, err)
	}
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL", 24*time.Hour); err != nil {
		errs = append(errs, err)
	}
	if cfg.MockCompletion, err = boolEnv("MOCK_COMPLETION", false); err != nil {
		errs = append(errs, err)
	}

	if cfg.OpenAIAPIKey == "" && !cfg.MockCompletion {
		errs = append(errs, errors.New("OPENAI_API_KEY is required unless MOCK_COMPLETION=true"))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := envOrDefault(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: want a positive duration like 30s, got %q", key, v)
	}
	return d, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := envOrDefault(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: want true or false, got %q", key, v)
	}
	return b, nil
}
