package quizgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochilabs/mochi/internal/llm"
)

func TestGenerateFeedback_NoCredentialCorrect(t *testing.T) {
	f := NewFeedbackGenerator(nil, nil)
	fb := f.GenerateFeedback(context.Background(), "Banana", "Banana", "fruit")

	assert.True(t, fb.IsCorrect)
	assert.Equal(t, "Great job! That is a Banana! 🎉", fb.Message)
	assert.Equal(t, "You're doing amazing!", fb.Encouragement)
}

func TestGenerateFeedback_NoCredentialIncorrect(t *testing.T) {
	f := NewFeedbackGenerator(nil, nil)
	fb := f.GenerateFeedback(context.Background(), "Orange", "Banana", "fruit")

	assert.False(t, fb.IsCorrect)
	assert.Equal(t, "Close! That is a Orange. Try finding the Banana!", fb.Message)
	assert.Equal(t, "You can do it! Try again!", fb.Encouragement)
}

func TestGenerateFeedback_CaseInsensitive(t *testing.T) {
	f := NewFeedbackGenerator(nil, nil)
	fb := f.GenerateFeedback(context.Background(), "banana", "Banana", "fruit")
	assert.True(t, fb.IsCorrect)
}

func TestGenerateFeedback_Deterministic(t *testing.T) {
	f := NewFeedbackGenerator(nil, nil)
	first := f.GenerateFeedback(context.Background(), "Orange", "Banana", "fruit")
	second := f.GenerateFeedback(context.Background(), "Orange", "Banana", "fruit")
	assert.Equal(t, first, second)
}

func TestGenerateFeedback_ModelReply(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"isCorrect": false, "message": "Yay, you found the cow! 🐮", "encouragement": "Super work!"}`),
	})
	f := NewFeedbackGenerator(provider, nil)

	fb := f.GenerateFeedback(context.Background(), "Cow", "Cow", "animal")
	require.Equal(t, 1, provider.CallCount())
	assert.Equal(t, "Yay, you found the cow! 🐮", fb.Message)
	assert.Equal(t, "Super work!", fb.Encouragement)
	// Local comparison overrides the model's verdict.
	assert.True(t, fb.IsCorrect)

	req := provider.Calls[0]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "answer-feedback", req.Schema.Name)
}

func TestGenerateFeedback_FallsBackOnProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	f := NewFeedbackGenerator(provider, nil)

	fb := f.GenerateFeedback(context.Background(), "Cow", "Cow", "animal")
	assert.True(t, fb.IsCorrect)
	assert.Equal(t, "Great job! That is a Cow! 🎉", fb.Message)
}

func TestGenerateFeedback_FallsBackOnMalformedReply(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("So happy you asked!"),
	})
	f := NewFeedbackGenerator(provider, nil)

	fb := f.GenerateFeedback(context.Background(), "Dog", "Cat", "animal")
	assert.False(t, fb.IsCorrect)
	assert.Equal(t, "Close! That is a Dog. Try finding the Cat!", fb.Message)
	assert.NotEmpty(t, fb.Encouragement)
}
