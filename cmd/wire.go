package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mochilabs/mochi/internal/config"
	"github.com/mochilabs/mochi/internal/imagegen"
	"github.com/mochilabs/mochi/internal/llm"
	"github.com/mochilabs/mochi/internal/logger"
	"github.com/mochilabs/mochi/internal/quizgen"
	"github.com/mochilabs/mochi/internal/store"
)

// app bundles everything a command needs after wiring.
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	store     *store.Store
	generator *quizgen.Generator
	enricher  *quizgen.Enricher
	feedback  *quizgen.FeedbackGenerator
}

func (a *app) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.log != nil {
		a.log.Sync()
	}
}

// buildApp wires config, store, provider and pipeline. A missing model
// credential is not an error: the provider stays nil and the pipeline runs
// in degraded mode (empty generation, template feedback).
func buildApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	var provider llm.Provider
	var source imagegen.Source

	llmCfg, found := llm.DiscoverConfig()
	if !found {
		log.Warn("no model API key configured, running in degraded mode")
	} else if llmCfg.Provider == "gemini" {
		// One connection serves both text generation and Imagen.
		gemini, err := llm.NewGeminiProvider(ctx, llmCfg.Gemini)
		if err != nil {
			st.Close()
			return nil, err
		}
		var p llm.Provider = gemini
		if llmCfg.Timeout > 0 {
			p = llm.WithTimeout(p, llmCfg.Timeout)
		}
		provider = llm.WithLogging(p, "gemini", st.EventRepo())
		if cfg.Images.Source == "gemini" {
			source = imagegen.NewGeminiSource(gemini.Client())
		}
	} else {
		provider, err = llm.NewProvider(ctx, llmCfg, st.EventRepo())
		if err != nil {
			st.Close()
			return nil, err
		}
	}

	if cfg.Images.Source == "pexels" && cfg.Images.PexelsKey != "" {
		source = imagegen.NewPexelsSource(cfg.Images.PexelsKey)
	}
	if source == nil && found {
		log.Warn("no usable image source configured, options will not be illustrated",
			"images_source", cfg.Images.Source)
	}

	genCfg := quizgen.DefaultConfig()
	return &app{
		cfg:       cfg,
		log:       log,
		store:     st,
		generator: quizgen.NewGenerator(provider, log, genCfg),
		enricher:  quizgen.NewEnricher(source, log, genCfg.Concurrency),
		feedback:  quizgen.NewFeedbackGenerator(provider, log),
	}, nil
}
