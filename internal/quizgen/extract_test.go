package quizgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuestionJSON = `[
  {
    "gameTitle": "Counting Apples",
    "questionText": "Can you find the picture with exactly 2 red apples?",
    "options": [
      { "label": "2 red apples", "imageGenerationPrompt": "Exactly 2 bright red apples on a white background" },
      { "label": "1 red apple", "imageGenerationPrompt": "Exactly 1 bright red apple on a white background" },
      { "label": "3 red apples", "imageGenerationPrompt": "Exactly 3 bright red apples on a white background" }
    ],
    "correctAnswer": "2 red apples",
    "explanation": "That picture has exactly 2 red apples."
  }
]`

func TestExtractQuestions_Plain(t *testing.T) {
	questions, err := ExtractQuestions(sampleQuestionJSON)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	q := questions[0]
	assert.Equal(t, "Counting Apples", q.Title)
	assert.Equal(t, "2 red apples", q.CorrectAnswer)
	require.Len(t, q.Options, 3)
	assert.Equal(t, "2 red apples", q.Options[0].Label)
	assert.Contains(t, q.Options[0].ImagePrompt, "Exactly 2")
	assert.Nil(t, q.Options[0].Image)
}

func TestExtractQuestions_FencedIdempotent(t *testing.T) {
	fenced := "```json\n" + sampleQuestionJSON + "\n```"
	fromFenced, err := ExtractQuestions(fenced)
	require.NoError(t, err)
	fromPlain, err := ExtractQuestions(sampleQuestionJSON)
	require.NoError(t, err)
	assert.Equal(t, fromPlain, fromFenced)
}

func TestExtractQuestions_FenceWithoutLanguageTag(t *testing.T) {
	fenced := "```\n" + sampleQuestionJSON + "\n```"
	questions, err := ExtractQuestions(fenced)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestExtractQuestions_SnakeCaseFields(t *testing.T) {
	raw := `[{
	  "gameTitle": "Shapes",
	  "questionText": "Can you find the circle?",
	  "options": [
	    { "label": "circle", "image_search_term": "a red circle" },
	    { "label": "square", "image_search_term": "a blue square" },
	    { "label": "triangle", "image_search_term": "a green triangle" }
	  ],
	  "correct_answer": "circle"
	}]`
	questions, err := ExtractQuestions(raw)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "circle", questions[0].CorrectAnswer)
	assert.Equal(t, "a red circle", questions[0].Options[0].ImagePrompt)
}

func TestExtractQuestions_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated array", `[{"gameTitle": "Counting"`},
		{"not json", "Sure! Here are your questions."},
		{"unclosed fence", "```json\n[]"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractQuestions(tt.raw)
			var malformed *ErrMalformedResponse
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.raw, malformed.Raw)
		})
	}
}

func TestExtractFeedback(t *testing.T) {
	fb, err := ExtractFeedback("```json\n" +
		`{"isCorrect": true, "message": "Yay, that is a cow! 🐮", "encouragement": "Keep it up!"}` +
		"\n```")
	require.NoError(t, err)
	assert.True(t, fb.IsCorrect)
	assert.Equal(t, "Yay, that is a cow! 🐮", fb.Message)
	assert.Equal(t, "Keep it up!", fb.Encouragement)
}

func TestExtractFeedback_MissingFields(t *testing.T) {
	_, err := ExtractFeedback(`{"isCorrect": true}`)
	var malformed *ErrMalformedResponse
	assert.True(t, errors.As(err, &malformed))
}
