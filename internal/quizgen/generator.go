package quizgen

import (
	"context"

	"github.com/google/uuid"

	"github.com/mochilabs/mochi/internal/llm"
	"github.com/mochilabs/mochi/internal/logger"
	"github.com/mochilabs/mochi/internal/safety"
)

// Generator produces quiz questions from a topic via the text model.
// A nil provider means no credential is configured: generation degrades to
// an empty result with zero outbound calls instead of failing.
type Generator struct {
	provider llm.Provider
	log      *logger.Logger
	cfg      Config
}

func NewGenerator(provider llm.Provider, log *logger.Logger, cfg Config) *Generator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Generator{provider: provider, log: log, cfg: cfg}
}

// GenerateQuestions runs the text half of the pipeline: safety screen,
// one model call, tolerant parse, validation, local ID assignment. It
// never returns an error; every failure degrades to an empty slice.
// Options come back unenriched (Image nil) for the enricher to resolve.
func (g *Generator) GenerateQuestions(ctx context.Context, req GenerationRequest) []Question {
	if g.provider == nil {
		g.log.Warn("no model credential configured, skipping generation", "topic", req.Topic)
		return []Question{}
	}

	topic, description, substituted := safety.Sanitize(req.Topic, req.Description)
	if substituted {
		g.log.Warn("unsafe topic substituted",
			"requested", req.Topic,
			"substituted", topic)
	}
	req.Topic = topic
	req.Description = description

	ctx = llm.WithPurpose(ctx, "question-set")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionPrompt(req, g.cfg.QuestionCount, g.cfg.OptionCount)},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		g.log.Error("question generation failed", "topic", req.Topic, "error", err)
		return []Question{}
	}

	parsed, err := ExtractQuestions(string(resp.Content))
	if err != nil {
		g.log.Error("question reply unparseable", "topic", req.Topic, "error", err)
		return []Question{}
	}

	questions := make([]Question, 0, len(parsed))
	for _, q := range parsed {
		if err := validateQuestion(q, g.cfg.OptionCount); err != nil {
			g.log.Warn("dropping invalid question", "topic", req.Topic, "error", err)
			continue
		}
		q.ID = uuid.NewString()
		questions = append(questions, q)
	}
	return questions
}
