package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuestionPrompt(t *testing.T) {
	prompt := buildQuestionPrompt(GenerationRequest{
		Topic:       "Farm Animals",
		Subject:     "Counting",
		Description: "Count the animals in the barn",
	}, 3, 3)

	assert.Contains(t, prompt, "Game Theme: Farm Animals")
	assert.Contains(t, prompt, "Learning Skill: Counting")
	assert.Contains(t, prompt, "Count the animals in the barn")
	assert.Contains(t, prompt, "Create exactly 3 options")
	assert.Contains(t, prompt, "Can you find the picture with")
	assert.Contains(t, prompt, "Do not include markdown blocks")
}

func TestBuildFeedbackPrompt(t *testing.T) {
	prompt := buildFeedbackPrompt("1 apple", "2 apples", "counting apples")
	assert.Contains(t, prompt, `identify "counting apples"`)
	assert.Contains(t, prompt, `chose "1 apple"`)
	assert.Contains(t, prompt, `correct answer is "2 apples"`)
}
