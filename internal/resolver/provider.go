package resolver

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-concierge-api/internal/tools"
	"github.com/noah-isme/campus-concierge-api/pkg/config"
)

// Options tune a resolver built from configuration.
type Options struct {
	Now           func() time.Time
	MaxToolRounds int
	Logger        *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.MaxToolRounds <= 0 {
		o.MaxToolRounds = DefaultMaxToolRounds
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// New builds the resolver selected by cfg.Provider.
func New(ctx context.Context, cfg config.ResolverConfig, registry *tools.Registry, opts Options) (Resolver, error) {
	if registry == nil {
		return nil, fmt.Errorf("resolver requires a tool registry")
	}
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = config.ProviderGemini
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key not found. Set RESOLVER_API_KEY (or %s_API_KEY) in your environment", strings.ToUpper(provider))
	}
	if cfg.MaxToolRounds > 0 && opts.MaxToolRounds <= 0 {
		opts.MaxToolRounds = cfg.MaxToolRounds
	}

	switch provider {
	case config.ProviderGemini:
		b, err := newGeminiBackend(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return newAgent(b, registry, opts), nil
	case config.ProviderGroq:
		return newAgent(newOpenAIBackend(orDefault(cfg.BaseURL, GroqBaseURL), cfg.APIKey, orDefault(cfg.Model, DefaultGroqModel), cfg.Timeout), registry, opts), nil
	case config.ProviderOpenAI:
		return newAgent(newOpenAIBackend(orDefault(cfg.BaseURL, OpenAIBaseURL), cfg.APIKey, orDefault(cfg.Model, DefaultOpenAIModel), cfg.Timeout), registry, opts), nil
	}
	return nil, fmt.Errorf("unknown resolver provider %q", cfg.Provider)
}

// Factory constructs a resolver on demand.
type Factory func(ctx context.Context) (Resolver, error)

// Provider holds the process-wide resolver, built on first use.
// A failed build is not remembered; the next Get tries again.
type Provider struct {
	mu       sync.Mutex
	factory  Factory
	resolver Resolver
}

// NewProvider wraps factory in a lazy singleton.
func NewProvider(factory Factory) *Provider {
	return &Provider{factory: factory}
}

// Get returns the shared resolver, building it if needed.
func (p *Provider) Get(ctx context.Context) (Resolver, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resolver != nil {
		return p.resolver, nil
	}
	r, err := p.factory(ctx)
	if err != nil {
		return nil, err
	}
	p.resolver = r
	return r, nil
}

// Ready reports whether the resolver has been built.
func (p *Provider) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolver != nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
