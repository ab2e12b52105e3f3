// Package server exposes the quiz pipeline and the activity store over HTTP.
package server

import (
	"github.com/mochilabs/mochi/internal/logger"
	"github.com/mochilabs/mochi/internal/quizgen"
	"github.com/mochilabs/mochi/internal/store"
)

// Server holds the handlers' dependencies. The pipeline components are
// injected so handlers never construct clients themselves.
type Server struct {
	generator *quizgen.Generator
	enricher  *quizgen.Enricher
	feedback  *quizgen.FeedbackGenerator

	categories store.CategoryRepo
	questions  store.QuestionRepo
	progress   store.ProgressRepo

	log *logger.Logger
}

type Config struct {
	Generator *quizgen.Generator
	Enricher  *quizgen.Enricher
	Feedback  *quizgen.FeedbackGenerator
	Store     *store.Store
	Log       *logger.Logger
}

func New(cfg Config) *Server {
	log := cfg.Log
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{
		generator:  cfg.Generator,
		enricher:   cfg.Enricher,
		feedback:   cfg.Feedback,
		categories: cfg.Store.CategoryRepo(),
		questions:  cfg.Store.QuestionRepo(),
		progress:   cfg.Store.ProgressRepo(),
		log:        log,
	}
}
