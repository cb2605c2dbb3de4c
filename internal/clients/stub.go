package clients

import "context"

// SampleReply is a fenced answer of the kind chat models commonly produce.
const SampleReply = "```json\n" + `{
  "recipes": {
    "Garlic Butter Pasta": {
      "preparation": {
        "1": "Boil the pasta in salted water until al dente.",
        "2": "Melt butter with sliced garlic over low heat.",
        "3": "Toss the drained pasta in the garlic butter and season."
      },
      "calories": "520 per serving"
    },
    "Tomato Bruschetta": {
      "preparation": {
        "1": "Toast slices of bread.",
        "2": "Top with diced tomato, garlic and olive oil."
      },
      "calories": "none"
    }
  }
}` + "\n```"

// StubCompleter returns a fixed reply without calling any model. It backs
// MOCK_COMPLETION mode for local development.
type StubCompleter struct {
	Reply string
	Err   error
}

func (s *StubCompleter) Complete(_ context.Context, _ string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

func (s *StubCompleter) Model() string {
	return "stub"
}
