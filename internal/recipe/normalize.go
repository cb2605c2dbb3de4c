package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	jsonMarker          = "{json"
	fenceLanguageTag    = "json"
	defaultRejectionMsg = "the provided ingredients could not be used"
)

// Sanitize repairs the usual artifacts models wrap around a JSON answer: a
// leading "{json" marker, markdown code fences and missing outer braces. The
// result is a best-effort JSON object; empty input stays empty.
func Sanitize(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}

	if strings.HasPrefix(s, jsonMarker) {
		s = strings.TrimSpace(s[len(jsonMarker):])
	}

	s = strings.TrimSpace(strings.ReplaceAll(s, "`", ""))

	// ```json fences leave their language tag behind once the backticks go.
	if rest, ok := strings.CutPrefix(s, fenceLanguageTag); ok && strings.HasPrefix(strings.TrimSpace(rest), "{") {
		s = strings.TrimSpace(rest)
	}

	if !strings.HasPrefix(s, "{") {
		s = "{" + s
	}
	if open := openBraces(s); open > 0 {
		s += strings.Repeat("}", open)
	} else if !strings.HasSuffix(s, "}") {
		s += "}"
	}
	return s
}

// openBraces counts object braces left unclosed, ignoring any inside string
// literals.
func openBraces(s string) int {
	depth := 0
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
		}
	}
	return depth
}

// Parse sanitizes a raw completion and decodes it into a Recipe. It returns an
// *InvalidIngredientsError when the model answered with an error document and
// an error wrapping ErrInvalidFormat when the text is not a recipe document.
func Parse(text string) (Recipe, error) {
	s := Sanitize(text)
	if s == "" {
		return Recipe{}, fmt.Errorf("%w: empty completion", ErrInvalidFormat)
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &root); err != nil {
		return Recipe{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if raw, ok := root["error"]; ok && !isNull(raw) {
		return Recipe{}, &InvalidIngredientsError{Message: errorMessage(raw)}
	}

	rec := Recipe{Recipes: map[string]Detail{}}
	raw, ok := root["recipes"]
	if !ok || isNull(raw) {
		return rec, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return Recipe{}, fmt.Errorf("%w: recipes: %v", ErrInvalidFormat, err)
	}
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		// A name that only differs by padding never replaces an earlier or exact one.
		if _, seen := rec.Recipes[name]; seen && name != key {
			continue
		}
		detail, err := parseDetail(entries[key])
		if err != nil {
			return Recipe{}, fmt.Errorf("%w: recipe %q: %v", ErrInvalidFormat, name, err)
		}
		rec.Recipes[name] = detail
	}
	return rec, nil
}

// CoerceCalories keeps a calorie estimate only if it mentions an ASCII digit,
// so "180 per slice" survives while "none" or "" become UnknownCalories.
func CoerceCalories(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.IndexFunc(s, isASCIIDigit) < 0 {
		return UnknownCalories
	}
	return s
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

type rawDetail struct {
	Preparation json.RawMessage `json:"preparation"`
	Calories    json.RawMessage `json:"calories"`
}

func parseDetail(raw json.RawMessage) (Detail, error) {
	var rd rawDetail
	if !isNull(raw) {
		if err := json.Unmarshal(raw, &rd); err != nil {
			return Detail{}, err
		}
	}

	steps, err := parseSteps(rd.Preparation)
	if err != nil {
		return Detail{}, fmt.Errorf("preparation: %w", err)
	}
	return Detail{
		Preparation: steps,
		Calories:    CoerceCalories(scalarText(rd.Calories)),
	}, nil
}

// parseSteps accepts either a label → text object or a plain list of steps,
// which is numbered from "1".
func parseSteps(raw json.RawMessage) (map[string]string, error) {
	steps := map[string]string{}
	if isNull(raw) {
		return steps, nil
	}

	var labelled map[string]json.RawMessage
	if err := json.Unmarshal(raw, &labelled); err == nil {
		for label, v := range labelled {
			if text := scalarText(v); text != "" {
				steps[label] = text
			}
		}
		return steps, nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("want object or array, got %s", firstByte(raw))
	}
	n := 0
	for _, v := range list {
		if text := scalarText(v); text != "" {
			n++
			steps[strconv.Itoa(n)] = text
		}
	}
	return steps, nil
}

func errorMessage(raw json.RawMessage) string {
	var obj struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if msg := strings.TrimSpace(scalarText(obj.Message)); msg != "" {
			return msg
		}
		return defaultRejectionMsg
	}
	if msg := strings.TrimSpace(scalarText(raw)); msg != "" {
		return msg
	}
	return defaultRejectionMsg
}

// scalarText renders a JSON string or number as text; anything else is "".
func scalarText(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func firstByte(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "nothing"
	}
	return strconv.Quote(string(trimmed[:1]))
}
