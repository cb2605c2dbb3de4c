package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mwhite7112/woodpantry-recipes/internal/events"
	"github.com/mwhite7112/woodpantry-recipes/internal/metrics"
	"github.com/mwhite7112/woodpantry-recipes/internal/prompt"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
)

const (
	// DefaultPortions is used when the caller does not ask for a portion count.
	DefaultPortions = "4"
	// MaxPortions caps the portion count accepted from callers.
	MaxPortions = 50
)

var (
	ErrNoIngredients   = errors.New("ingredients parameter cannot be empty")
	ErrInvalidPortions = fmt.Errorf("portions must be a whole number between 1 and %d", MaxPortions)
)

// RecipeService turns an ingredient list into recipes: prompt → completion →
// normalization. The cache and publisher are optional and may be nil.
type RecipeService struct {
	completer Completer
	template  string
	cache     RecipeCache
	publisher EventPublisher
}

func NewRecipeService(completer Completer, template string, cache RecipeCache, publisher EventPublisher) *RecipeService {
	return &RecipeService{
		completer: completer,
		template:  template,
		cache:     cache,
		publisher: publisher,
	}
}

// GetRecipes asks the completion service for recipes using ingredients, a
// comma-separated list, for the given number of portions ("" means
// DefaultPortions). An empty Recipe with a nil error means the model suggested
// nothing.
func (s *RecipeService) GetRecipes(ctx context.Context, ingredients, portions string) (recipe.Recipe, error) {
	ingredients = strings.TrimSpace(ingredients)
	if ingredients == "" {
		return recipe.Recipe{}, ErrNoIngredients
	}
	items := SplitIngredients(ingredients)
	if len(items) == 0 {
		return recipe.Recipe{}, ErrNoIngredients
	}
	portions, err := normalizePortions(portions)
	if err != nil {
		return recipe.Recipe{}, err
	}

	key := CacheKey(items, portions)

	if rec, ok := s.lookup(ctx, key); ok {
		slog.Debug("recipes served from cache", "key", key, "recipes", len(rec.Recipes))
		return rec, nil
	}

	text, err := s.complete(ctx, ingredients, portions)
	if err != nil {
		return recipe.Recipe{}, err
	}

	rec, err := recipe.Parse(text)
	if err != nil {
		var invalid *recipe.InvalidIngredientsError
		switch {
		case errors.As(err, &invalid):
			metrics.NormalizeOutcomes.WithLabelValues(metrics.OutcomeInvalidIngredients).Inc()
			slog.Warn("model rejected ingredients", "ingredients", ingredients, "message", invalid.Message)
		default:
			metrics.NormalizeOutcomes.WithLabelValues(metrics.OutcomeInvalidFormat).Inc()
			slog.Error("failed to parse completion as recipes", "error", err, "response", text)
		}
		return recipe.Recipe{}, fmt.Errorf("normalize completion: %w", err)
	}

	if rec.Empty() {
		metrics.NormalizeOutcomes.WithLabelValues(metrics.OutcomeEmpty).Inc()
		slog.Info("no recipes found", "ingredients", ingredients)
		return rec, nil
	}
	metrics.NormalizeOutcomes.WithLabelValues(metrics.OutcomeOK).Inc()

	s.store(ctx, key, rec)
	s.publish(ctx, events.NewRecipesGenerated(items, portions, rec.Names()))

	return rec, nil
}

func (s *RecipeService) complete(ctx context.Context, ingredients, portions string) (string, error) {
	text := prompt.Render(s.template, map[string]string{
		prompt.KeyIngredients: ingredients,
		prompt.KeyPortions:    portions,
	})

	model := s.completer.Model()
	start := time.Now()
	reply, err := s.completer.Complete(ctx, text)
	metrics.CompletionDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CompletionErrors.WithLabelValues(model).Inc()
		return "", fmt.Errorf("completion: %w", err)
	}

	slog.Debug("raw completion", "model", model, "response", reply)
	return reply, nil
}

func (s *RecipeService) lookup(ctx context.Context, key string) (recipe.Recipe, bool) {
	if s.cache == nil {
		return recipe.Recipe{}, false
	}
	rec, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		slog.Warn("recipe cache lookup failed", "key", key, "error", err)
		return recipe.Recipe{}, false
	case !ok:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return recipe.Recipe{}, false
	default:
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return rec, true
	}
}

func (s *RecipeService) store(ctx context.Context, key string, rec recipe.Recipe) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, rec); err != nil {
		slog.Warn("recipe cache store failed", "key", key, "error", err)
	}
}

func (s *RecipeService) publish(ctx context.Context, event events.RecipesGenerated) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRecipesGenerated(ctx, event); err != nil {
		slog.Warn("publish recipes.generated failed", "event_id", event.EventID, "error", err)
	}
}

func normalizePortions(portions string) (string, error) {
	portions = strings.TrimSpace(portions)
	if portions == "" {
		return DefaultPortions, nil
	}
	n, err := strconv.Atoi(portions)
	if err != nil || n < 1 || n > MaxPortions {
		return "", ErrInvalidPortions
	}
	return strconv.Itoa(n), nil
}

// SplitIngredients turns a comma-separated list into lower-cased, trimmed,
// sorted and de-duplicated ingredient names.
func SplitIngredients(ingredients string) []string {
	seen := make(map[string]struct{})
	items := []string{}
	for _, part := range strings.Split(ingredients, ",") {
		item := strings.ToLower(strings.Join(strings.Fields(part), " "))
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// CacheKey derives a stable key from normalized ingredients and portions, so
// "Tomato, egg" and "egg,tomato" share an entry.
func CacheKey(items []string, portions string) string {
	sum := sha256.Sum256([]byte(strings.Join(items, ",") + "|" + portions))
	return hex.EncodeToString(sum[:])
}
