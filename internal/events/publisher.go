package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "woodpantry.topic"
	routingKey   = "recipes.generated"
)

// RecipesGenerated is emitted after the model produced a non-empty set of
// recipes that was not served from cache. Downstream services can use
// RecipeNames to index suggestions against the ingredients that led to them.
type RecipesGenerated struct {
	EventID     uuid.UUID `json:"event_id"`
	Timestamp   string    `json:"timestamp"`
	Ingredients []string  `json:"ingredients"`
	Portions    string    `json:"portions"`
	RecipeNames []string  `json:"recipe_names"`
}

// NewRecipesGenerated stamps a new event with an id and the current time.
func NewRecipesGenerated(ingredients []string, portions string, recipeNames []string) RecipesGenerated {
	return RecipesGenerated{
		EventID:     uuid.New(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Ingredients: ingredients,
		Portions:    portions,
		RecipeNames: recipeNames,
	}
}

// RecipesGeneratedPublisher publishes recipes.generated events. It is optional:
// the service only builds one when RABBITMQ_URL is set, and publish failures
// never fail a recipe request.
type RecipesGeneratedPublisher struct {
	conn *amqp.Connection
}

// NewRecipesGeneratedPublisher dials RabbitMQ once at startup and declares the
// woodpantry.topic exchange before anything is published.
func NewRecipesGeneratedPublisher(rabbitmqURL string) (*RecipesGeneratedPublisher, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchangeName, err)
	}

	return &RecipesGeneratedPublisher{conn: conn}, nil
}

// PublishRecipesGenerated sends event as persistent JSON, with the event id as
// the AMQP message id so consumers can drop redeliveries.
func (p *RecipesGeneratedPublisher) PublishRecipesGenerated(ctx context.Context, event RecipesGenerated) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal recipes.generated event: %w", err)
	}

	if err := ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish recipes.generated: %w", err)
	}

	return nil
}

// Close closes the RabbitMQ connection.
func (p *RecipesGeneratedPublisher) Close() error {
	return p.conn.Close()
}
