package quizgen

import (
	"fmt"

	"github.com/mochilabs/mochi/internal/llm"
)

// feedbackSchema constrains the feedback reply to the two short fields the
// UI renders. Providers with native structured output enforce it upstream.
var feedbackSchema = &llm.Schema{
	Name:        "answer-feedback",
	Description: "Child-friendly feedback on a quiz answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type":        "boolean",
				"description": "Whether the child picked the correct option",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "Short child-friendly feedback, max 15 words",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "Motivational phrase, max 10 words",
			},
		},
		"required":             []any{"isCorrect", "message", "encouragement"},
		"additionalProperties": false,
	},
}

// validateQuestion checks a parsed question against the prompt contract.
func validateQuestion(q Question, optionCount int) error {
	if q.Text == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) != optionCount {
		return fmt.Errorf("expected %d options, got %d", optionCount, len(q.Options))
	}
	for i, opt := range q.Options {
		if opt.Label == "" {
			return fmt.Errorf("option %d has empty label", i)
		}
	}
	if q.CorrectAnswer != "" && !hasOption(q, q.CorrectAnswer) {
		return fmt.Errorf("correct answer %q matches no option label", q.CorrectAnswer)
	}
	return nil
}

func hasOption(q Question, label string) bool {
	for _, opt := range q.Options {
		if opt.Label == label {
			return true
		}
	}
	return false
}
