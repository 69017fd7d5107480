package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-concierge-api/internal/models"
	"github.com/noah-isme/campus-concierge-api/internal/resolver"
	"github.com/noah-isme/campus-concierge-api/internal/tools"
	appErrors "github.com/noah-isme/campus-concierge-api/pkg/errors"
)

type resolverProvider interface {
	Get(ctx context.Context) (resolver.Resolver, error)
	Ready() bool
}

// ChatHealth reports chat readiness.
type ChatHealth struct {
	Status        string   `json:"status"`
	Service       string   `json:"service"`
	ResolverReady bool     `json:"resolver_ready"`
	Tools         []string `json:"tools"`
}

// ChatService answers free-text questions through the resolver.
type ChatService struct {
	provider resolverProvider
	registry *tools.Registry
	metrics  *MetricsService
	logger   *zap.Logger
	timeout  time.Duration
}

// NewChatService constructs a ChatService. A non-positive timeout leaves the caller's context untouched.
func NewChatService(provider resolverProvider, registry *tools.Registry, metrics *MetricsService, logger *zap.Logger, timeout time.Duration) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{provider: provider, registry: registry, metrics: metrics, logger: logger, timeout: timeout}
}

// Ask resolves one chat turn. Resolver failures are folded into an apology;
// only blank input and an unavailable resolver are returned as errors.
func (s *ChatService) Ask(ctx context.Context, message string) (models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatResponse{}, appErrors.Clone(appErrors.ErrValidation, "message is required")
	}

	start := time.Now()
	r, err := s.provider.Get(ctx)
	if err != nil {
		s.metrics.ObserveChatTurn(ChatOutcomeUnavailable, time.Since(start))
		s.logger.Error("resolver unavailable", zap.Error(err))
		return models.ChatResponse{}, appErrors.Wrap(err, appErrors.ErrResolverUnavailable.Code, appErrors.ErrResolverUnavailable.Status, "Failed to initialize AI agent: "+err.Error())
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	res, err := r.Resolve(ctx, message)
	resp := resolver.Normalize(res, err)

	outcome := ChatOutcomeOK
	if err != nil {
		outcome = ChatOutcomeApology
		s.logger.Warn("chat turn failed", zap.Error(err))
	}
	s.metrics.ObserveChatTurn(outcome, time.Since(start))
	return resp, nil
}

// Health reports whether the resolver has been built and which tools it can use.
func (s *ChatService) Health() ChatHealth {
	return ChatHealth{
		Status:        "healthy",
		Service:       "AI Campus Concierge Chat",
		ResolverReady: s.provider.Ready(),
		Tools:         s.registry.Names(),
	}
}

// Tools returns the registry metadata.
func (s *ChatService) Tools() []*tools.Tool {
	return s.registry.List()
}
