// Package quizgen is the content generation pipeline: it turns a topic into
// a set of illustrated multiple-choice questions for preschoolers, and
// produces per-answer feedback. Every external failure degrades to partial
// or empty output; nothing in this package panics or surfaces upstream
// errors to the caller.
package quizgen

// GenerationRequest describes one quiz to generate. Immutable once built.
type GenerationRequest struct {
	Topic       string `json:"topic"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// Question is one generated quiz question. The ID is assigned locally
// because the model never supplies one.
type Question struct {
	ID            string   `json:"id"`
	Title         string   `json:"gameTitle"`
	Text          string   `json:"questionText"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Option is one answer choice. Image starts nil and is resolved exactly
// once by the enricher: either a data URI or an explicit JSON null.
type Option struct {
	Label       string  `json:"label"`
	ImagePrompt string  `json:"imagePrompt,omitempty"`
	Image       *string `json:"image"`
}

// Feedback is the reply to a learner's answer. Always fully populated.
type Feedback struct {
	IsCorrect     bool   `json:"isCorrect"`
	Message       string `json:"message"`
	Encouragement string `json:"encouragement"`
}
