package service

import (
	"context"

	"github.com/mwhite7112/woodpantry-recipes/internal/events"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
)

// Completer abstracts the chat completion service: prompt in, text out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// RecipeCache abstracts the response cache for testing.
type RecipeCache interface {
	Get(ctx context.Context, key string) (recipe.Recipe, bool, error)
	Set(ctx context.Context, key string, rec recipe.Recipe) error
}

// EventPublisher abstracts the RabbitMQ publisher for testing.
type EventPublisher interface {
	PublishRecipesGenerated(ctx context.Context, event events.RecipesGenerated) error
}
