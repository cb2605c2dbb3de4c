package prompt

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed templates/recipe.txt
var defaultTemplate string

// Placeholder names understood by the recipe template.
const (
	KeyIngredients = "inputString"
	KeyPortions    = "portions"
)

// Load returns the template at path, or the built-in recipe template when path
// is empty.
func Load(path string) (string, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt template %s: %w", path, err)
	}
	return string(data), nil
}

// Render replaces every {key} in template with values[key]. Substitution is a
// single pass, so placeholder-looking text inside a value is left alone.
// Placeholders without an entry in values are kept verbatim.
func Render(template string, values map[string]string) string {
	if len(values) == 0 {
		return template
	}
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
