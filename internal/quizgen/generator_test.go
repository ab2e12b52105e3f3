package quizgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochilabs/mochi/internal/llm"
)

func TestGenerateQuestions_NoCredential(t *testing.T) {
	g := NewGenerator(nil, nil, DefaultConfig())
	questions := g.GenerateQuestions(context.Background(), GenerationRequest{
		Topic: "Farm Animals", Subject: "Animals",
	})
	assert.Empty(t, questions)
}

func TestGenerateQuestions_FencedReply(t *testing.T) {
	reply := "```json\n" + sampleQuestionJSON + "\n```"
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(reply)})
	g := NewGenerator(provider, nil, DefaultConfig())

	questions := g.GenerateQuestions(context.Background(), GenerationRequest{
		Topic:       "Happy Puppies",
		Subject:     "Animals",
		Description: "friendly puppies",
	})

	require.Len(t, questions, 1)
	assert.Equal(t, 1, provider.CallCount())

	q := questions[0]
	assert.NotEmpty(t, q.ID)
	require.Len(t, q.Options, 3)
	for _, opt := range q.Options {
		assert.Nil(t, opt.Image)
	}
}

func TestGenerateQuestions_UniqueIDs(t *testing.T) {
	two := `[
	  {"gameTitle":"A","questionText":"Can you find the cat?","options":[{"label":"cat"},{"label":"dog"},{"label":"fish"}],"correctAnswer":"cat"},
	  {"gameTitle":"A","questionText":"Can you find the dog?","options":[{"label":"dog"},{"label":"cat"},{"label":"fish"}],"correctAnswer":"dog"}
	]`
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(two)})
	g := NewGenerator(provider, nil, DefaultConfig())

	questions := g.GenerateQuestions(context.Background(), GenerationRequest{Topic: "Pets"})
	require.Len(t, questions, 2)
	assert.NotEqual(t, questions[0].ID, questions[1].ID)
}

func TestGenerateQuestions_UnsafeTopicSubstituted(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`[]`)})
	g := NewGenerator(provider, nil, DefaultConfig())

	g.GenerateQuestions(context.Background(), GenerationRequest{
		Topic:       "sword fighting",
		Subject:     "History",
		Description: "medieval battles",
	})

	require.Equal(t, 1, provider.CallCount())
	prompt := provider.Calls[0].Messages[0].Content
	assert.NotContains(t, prompt, "sword fighting")
	assert.Contains(t, prompt, "Happy Puppies")
}

func TestGenerateQuestions_UnsafeDescriptionSubstituted(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`[]`)})
	g := NewGenerator(provider, nil, DefaultConfig())

	g.GenerateQuestions(context.Background(), GenerationRequest{
		Topic:       "History Stories",
		Subject:     "Reading",
		Description: "a story about a gun fight",
	})

	require.Equal(t, 1, provider.CallCount())
	prompt := provider.LastCall().Messages[0].Content
	assert.NotContains(t, prompt, "gun")
	assert.NotContains(t, prompt, "History Stories")
	assert.Contains(t, prompt, "Happy Puppies")
}

func TestGenerateQuestions_MalformedReply(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Sorry, I can't produce JSON today."),
	})
	g := NewGenerator(provider, nil, DefaultConfig())

	questions := g.GenerateQuestions(context.Background(), GenerationRequest{Topic: "Colors"})
	assert.Empty(t, questions)
	assert.Equal(t, 1, provider.CallCount())
}

func TestGenerateQuestions_DropsInvalidRecords(t *testing.T) {
	mixed := `[
	  {"gameTitle":"A","questionText":"Can you find the cat?","options":[{"label":"cat"},{"label":"dog"},{"label":"fish"}],"correctAnswer":"cat"},
	  {"gameTitle":"B","questionText":"Only two options","options":[{"label":"x"},{"label":"y"}],"correctAnswer":"x"},
	  {"gameTitle":"C","questionText":"Answer not an option","options":[{"label":"a"},{"label":"b"},{"label":"c"}],"correctAnswer":"z"}
	]`
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mixed)})
	g := NewGenerator(provider, nil, DefaultConfig())

	questions := g.GenerateQuestions(context.Background(), GenerationRequest{Topic: "Pets"})
	require.Len(t, questions, 1)
	assert.Equal(t, "A", questions[0].Title)
}

func TestGenerateQuestions_ProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	g := NewGenerator(provider, nil, DefaultConfig())

	questions := g.GenerateQuestions(context.Background(), GenerationRequest{Topic: "Colors"})
	assert.Empty(t, questions)
}
