package quizgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/mochilabs/mochi/internal/llm"
	"github.com/mochilabs/mochi/internal/logger"
)

// FeedbackGenerator produces per-answer encouragement. Correctness is
// always computed locally by case-insensitive comparison; the model only
// supplies wording, and a deterministic template stands in whenever the
// model is unavailable or misbehaves.
type FeedbackGenerator struct {
	provider llm.Provider
	log      *logger.Logger
}

func NewFeedbackGenerator(provider llm.Provider, log *logger.Logger) *FeedbackGenerator {
	if log == nil {
		log = logger.NewNop()
	}
	return &FeedbackGenerator{provider: provider, log: log}
}

// GenerateFeedback returns a fully populated Feedback. It never errors:
// any failure path lands on the local template.
func (f *FeedbackGenerator) GenerateFeedback(ctx context.Context, userAnswer, correctAnswer, targetItem string) Feedback {
	isCorrect := strings.EqualFold(userAnswer, correctAnswer)

	if f.provider == nil {
		return fallbackFeedback(userAnswer, correctAnswer, isCorrect)
	}

	ctx = llm.WithPurpose(ctx, "feedback")
	resp, err := f.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackPrompt(userAnswer, correctAnswer, targetItem)},
		},
		Schema:      feedbackSchema,
		MaxTokens:   256,
		Temperature: 0.4,
	})
	if err != nil {
		f.log.Warn("feedback generation failed, using template", "error", err)
		return fallbackFeedback(userAnswer, correctAnswer, isCorrect)
	}

	fb, err := ExtractFeedback(string(resp.Content))
	if err != nil {
		f.log.Warn("feedback reply unparseable, using template", "error", err)
		return fallbackFeedback(userAnswer, correctAnswer, isCorrect)
	}

	// The model's own verdict is unreliable; the local comparison wins.
	fb.IsCorrect = isCorrect
	return fb
}

// fallbackFeedback is the deterministic local template. Its output is
// byte-for-byte reproducible for a given answer pair.
func fallbackFeedback(userAnswer, correctAnswer string, isCorrect bool) Feedback {
	if isCorrect {
		return Feedback{
			IsCorrect:     true,
			Message:       fmt.Sprintf("Great job! That is a %s! 🎉", correctAnswer),
			Encouragement: "You're doing amazing!",
		}
	}
	return Feedback{
		IsCorrect:     false,
		Message:       fmt.Sprintf("Close! That is a %s. Try finding the %s!", userAnswer, correctAnswer),
		Encouragement: "You can do it! Try again!",
	}
}
