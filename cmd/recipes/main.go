package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mwhite7112/woodpantry-recipes/internal/api"
	"github.com/mwhite7112/woodpantry-recipes/internal/cache"
	"github.com/mwhite7112/woodpantry-recipes/internal/clients"
	"github.com/mwhite7112/woodpantry-recipes/internal/config"
	"github.com/mwhite7112/woodpantry-recipes/internal/events"
	"github.com/mwhite7112/woodpantry-recipes/internal/prompt"
	"github.com/mwhite7112/woodpantry-recipes/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	template, err := prompt.Load(cfg.PromptPath)
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	ctx := context.Background()

	var recipeCache service.RecipeCache
	if cfg.RedisURL != "" {
		redisClient, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		defer redisClient.Close()
		recipeCache = cache.NewRedisCache(redisClient, cfg.CacheTTL)
		slog.Info("recipe cache enabled", "ttl", cfg.CacheTTL.String())
	}

	var publisher service.EventPublisher
	if cfg.RabbitMQURL != "" {
		pub, err := events.NewRecipesGeneratedPublisher(cfg.RabbitMQURL)
		if err != nil {
			return fmt.Errorf("events: %w", err)
		}
		defer pub.Close()
		publisher = pub
		slog.Info("recipes.generated events enabled")
	}

	recipes := service.NewRecipeService(buildCompleter(cfg), template, recipeCache, publisher)
	handler := api.NewRouter(recipes, cfg.Port)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("recipes service listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-done:
	}
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
	return nil
}

func buildCompleter(cfg config.Config) service.Completer {
	if cfg.MockCompletion {
		slog.Info("mode: stub completion enabled")
		return &clients.StubCompleter{Reply: clients.SampleReply}
	}
	slog.Info("mode: chat completion", "url", cfg.CompletionURL, "model", cfg.CompletionModel)
	return clients.NewCompletionClient(
		cfg.CompletionURL,
		cfg.OpenAIAPIKey,
		cfg.CompletionModel,
		&http.Client{Timeout: cfg.CompletionTimeout},
	)
}
