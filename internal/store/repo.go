package store

import "context"

// CategoryRepo provides access to stored categories.
type CategoryRepo interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, cat *Category) error
	Recent(ctx context.Context, limit int) ([]Category, error)
}

// QuestionRepo provides access to stored questions and their options.
type QuestionRepo interface {
	ListByCategory(ctx context.Context, categoryID uint) ([]Question, error)
	Create(ctx context.Context, q *Question) error

	// SaveActivity stores a category together with its questions and
	// options in one transaction. Question CategoryID values are filled
	// from the created category.
	SaveActivity(ctx context.Context, cat *Category, questions []Question) error
}

// ProgressRepo provides access to game progress records.
type ProgressRepo interface {
	Create(ctx context.Context, p *GameProgress) error
	BySession(ctx context.Context, session string) ([]GameProgress, error)
	Recent(ctx context.Context, limit int) ([]GameProgress, error)
}

// EventRepo appends and queries LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
	GetLLMEvent(ctx context.Context, id uint) (*LLMRequestEvent, error)
}

// LLMRequestEventData carries one LLM request observation into the log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts bounds event queries.
type QueryOpts struct {
	Limit   int
	Purpose string
}
