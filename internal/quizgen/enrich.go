package quizgen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mochilabs/mochi/internal/imagegen"
	"github.com/mochilabs/mochi/internal/logger"
)

// Enricher attaches an image to every answer option. Each option is
// resolved independently: a failure or safety block on one option leaves
// that option's image null and never touches its siblings.
type Enricher struct {
	source      imagegen.Source
	log         *logger.Logger
	concurrency int
}

func NewEnricher(source imagegen.Source, log *logger.Logger, concurrency int) *Enricher {
	if log == nil {
		log = logger.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Enricher{source: source, log: log, concurrency: concurrency}
}

// Enrich resolves every option's image in place and returns the same
// slice. After it returns, each option holds either a data URI or nil.
// A nil source resolves everything to nil without any calls.
func (e *Enricher) Enrich(ctx context.Context, questions []Question) []Question {
	if e.source == nil {
		return questions
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for qi := range questions {
		for oi := range questions[qi].Options {
			opt := &questions[qi].Options[oi]
			g.Go(func() error {
				uri, err := e.source.Generate(ctx, imageSubject(*opt))
				if err != nil {
					e.log.Warn("image enrichment failed",
						"label", opt.Label,
						"error", err)
					return nil
				}
				opt.Image = &uri
				return nil
			})
		}
	}

	// Workers never return errors; Wait only orders completion.
	_ = g.Wait()
	return questions
}

// imageSubject picks the search or illustration subject for an option.
// The subject stays bare here: each image source wraps it the way its
// backend expects (a style directive for generation, nothing for photo
// search).
func imageSubject(opt Option) string {
	if opt.ImagePrompt != "" {
		return opt.ImagePrompt
	}
	return opt.Label
}
