package recipe

import (
	"errors"
	"sort"
)

// UnknownCalories is reported when the model gave no usable calorie estimate.
const UnknownCalories = "Unknown"

// ErrInvalidFormat is returned when the completion text cannot be read as a
// recipe document even after sanitizing.
var ErrInvalidFormat = errors.New("invalid response format")

// InvalidIngredientsError is reported by the model itself, as an
// {"error": {"message": "..."}} document, when it rejects the ingredient list.
type InvalidIngredientsError struct {
	Message string
}

func (e *InvalidIngredientsError) Error() string {
	return "invalid ingredients: " + e.Message
}

// Recipe maps recipe names to their details.
type Recipe struct {
	Recipes map[string]Detail `json:"recipes"`
}

// Detail holds the numbered preparation steps and a calorie estimate.
type Detail struct {
	Preparation map[string]string `json:"preparation"`
	Calories    string            `json:"calories"`
}

// Empty reports whether the recipe set has no entries.
func (r Recipe) Empty() bool {
	return len(r.Recipes) == 0
}

// Names returns the recipe names in lexical order.
func (r Recipe) Names() []string {
	names := make([]string, 0, len(r.Recipes))
	for name := range r.Recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
