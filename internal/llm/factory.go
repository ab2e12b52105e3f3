package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mochilabs/mochi/internal/store"
)

// NewProvider creates a Provider from configuration.
// When eventRepo is non-nil the provider is wrapped with event logging.
// There is deliberately no retry middleware: the pipeline is single-attempt,
// and a transient failure degrades to empty output rather than added latency.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	var p Provider = base
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	if eventRepo != nil {
		p = WithLogging(p, cfg.Provider, eventRepo)
	}
	return p, nil
}

// timeoutProvider bounds each generation call. Expiry surfaces as
// ErrProviderUnavailable, which callers treat like any other failure.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps a Provider with a per-call deadline.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	return &timeoutProvider{inner: p, timeout: timeout}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.inner.Generate(ctx, req)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("request timed out after %s", t.timeout)}
	}
	return resp, err
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
