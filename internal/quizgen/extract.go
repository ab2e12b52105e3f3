package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrMalformedResponse reports a model reply that could not be parsed into
// the expected shape. Raw carries the original text for diagnostics.
type ErrMalformedResponse struct {
	Raw string
	Err error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }

// stripFence removes an optional markdown code fence wrapping the reply.
// Models wrap JSON in fences despite being told not to, with or without a
// language tag. The grammar is strict: a leading fence line requires a
// closing fence, otherwise the reply is reported malformed instead of
// guessing at the interior.
func stripFence(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text, nil
	}
	// Drop the opening fence line, language tag included.
	_, rest, found := strings.Cut(text, "\n")
	if !found {
		return "", fmt.Errorf("opening code fence with no body")
	}
	end := strings.LastIndex(rest, "```")
	if end < 0 {
		return "", fmt.Errorf("opening code fence with no closing fence")
	}
	return strings.TrimSpace(rest[:end]), nil
}

// Wire shapes tolerate both field-name variants the model has been seen to
// emit. Normalization to the canonical types happens here so nothing
// downstream branches on naming.
type questionWire struct {
	GameTitle          string       `json:"gameTitle"`
	QuestionText       string       `json:"questionText"`
	Options            []optionWire `json:"options"`
	CorrectAnswer      string       `json:"correctAnswer"`
	CorrectAnswerSnake string       `json:"correct_answer"`
	Explanation        string       `json:"explanation"`
}

type optionWire struct {
	Label           string `json:"label"`
	ImagePrompt     string `json:"imageGenerationPrompt"`
	ImageSearchTerm string `json:"image_search_term"`
}

func (w questionWire) normalize() Question {
	q := Question{
		Title:         w.GameTitle,
		Text:          w.QuestionText,
		CorrectAnswer: w.CorrectAnswer,
		Explanation:   w.Explanation,
	}
	if q.CorrectAnswer == "" {
		q.CorrectAnswer = w.CorrectAnswerSnake
	}
	q.Options = make([]Option, 0, len(w.Options))
	for _, o := range w.Options {
		prompt := o.ImagePrompt
		if prompt == "" {
			prompt = o.ImageSearchTerm
		}
		q.Options = append(q.Options, Option{Label: o.Label, ImagePrompt: prompt})
	}
	return q
}

// ExtractQuestions parses a raw model reply into questions. It never
// coerces unparseable input into an empty list; that decision belongs to
// the caller.
func ExtractQuestions(raw string) ([]Question, error) {
	text, err := stripFence(raw)
	if err != nil {
		return nil, &ErrMalformedResponse{Raw: raw, Err: err}
	}
	var wires []questionWire
	if err := json.Unmarshal([]byte(text), &wires); err != nil {
		return nil, &ErrMalformedResponse{Raw: raw, Err: err}
	}
	questions := make([]Question, 0, len(wires))
	for _, w := range wires {
		questions = append(questions, w.normalize())
	}
	return questions, nil
}

type feedbackWire struct {
	IsCorrect     *bool  `json:"isCorrect"`
	Message       string `json:"message"`
	Encouragement string `json:"encouragement"`
}

// ExtractFeedback parses a raw model reply into a feedback pair. The
// isCorrect field may be absent; callers compute it locally regardless.
func ExtractFeedback(raw string) (Feedback, error) {
	text, err := stripFence(raw)
	if err != nil {
		return Feedback{}, &ErrMalformedResponse{Raw: raw, Err: err}
	}
	var wire feedbackWire
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return Feedback{}, &ErrMalformedResponse{Raw: raw, Err: err}
	}
	if wire.Message == "" || wire.Encouragement == "" {
		return Feedback{}, &ErrMalformedResponse{
			Raw: raw,
			Err: fmt.Errorf("feedback reply missing message or encouragement"),
		}
	}
	fb := Feedback{Message: wire.Message, Encouragement: wire.Encouragement}
	if wire.IsCorrect != nil {
		fb.IsCorrect = *wire.IsCorrect
	}
	return fb, nil
}
