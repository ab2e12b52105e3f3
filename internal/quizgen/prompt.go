package quizgen

import (
	"fmt"
)

const questionSystemPrompt = `You are Mochi, a friendly preschool teacher creating fun, ` +
	`multiple-choice educational games for children aged 3-6. You respond only with ` +
	`the exact JSON the caller asks for, never with prose or markdown.`

const questionPromptTemplate = `Create a fun, multiple-choice educational game.

Here is your core data:
- Game Theme: %s
- Learning Skill: %s
- Exact Scenario to Test: %s

CRITICAL RULES TO LINK THE QUESTION AND ANSWER:
1. First, decide what the CORRECT answer is based on the Exact Scenario.
2. You MUST write the questionText so it explicitly asks for that exact correct answer.
   Format it EXACTLY like this: "Can you find the picture with [INSERT CORRECT ANSWER HERE]?"
3. Create exactly %d options. ONE option must perfectly match the correct answer.
   The others must be plausible wrong answers (e.g., wrong numbers or wrong colors).
4. The correctAnswer field MUST exactly match the label of the correct option.
5. NEVER mention backgrounds like "tables" or "rooms" in the text.

Respond ONLY with a JSON array of exactly %d such objects, in this exact format.
Do not include markdown blocks.
[
  {
    "gameTitle": "%s",
    "questionText": "Can you find the picture with exactly 2 red apples?",
    "options": [
      { "label": "2 red apples", "imageGenerationPrompt": "Exactly 2 bright red apples isolated on a plain white background" },
      { "label": "1 red apple", "imageGenerationPrompt": "Exactly 1 bright red apple isolated on a plain white background" },
      { "label": "3 red apples", "imageGenerationPrompt": "Exactly 3 bright red apples isolated on a plain white background" }
    ],
    "correctAnswer": "2 red apples",
    "explanation": "Great job! That picture has exactly 2 red apples."
  }
]`

// buildQuestionPrompt renders the question-set prompt for an already
// safety-screened request.
func buildQuestionPrompt(req GenerationRequest, questionCount, optionCount int) string {
	return fmt.Sprintf(questionPromptTemplate,
		req.Topic, req.Subject, req.Description,
		optionCount, questionCount, req.Topic)
}

const feedbackSystemPrompt = `You are Mochi, a friendly AI teaching assistant for ` +
	`preschoolers (ages 3-6). Be warm, encouraging, and use simple language. Use emojis.`

const feedbackPromptTemplate = `A child was asked to identify "%s" and they chose "%s".
The correct answer is "%s".

Reply with a short child-friendly message (max 15 words) and a motivational
encouragement (max 10 words).`

func buildFeedbackPrompt(userAnswer, correctAnswer, targetItem string) string {
	return fmt.Sprintf(feedbackPromptTemplate, targetItem, userAnswer, correctAnswer)
}
