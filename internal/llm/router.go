package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/TestRank-hq/testrank/internal/config"
)

// Router routes requests to the configured provider, falling back to any
// other available provider when the preferred one is down.
type Router struct {
	defaultProvider Provider
	clients         map[Provider]Client
	fallbacks       []Provider
}

// NewRouter creates a new LLM router from config
func NewRouter(cfg *config.Config) (*Router, error) {
	r := &Router{
		defaultProvider: Provider(cfg.LLM.DefaultProvider),
		clients:         make(map[Provider]Client),
		fallbacks:       []Provider{ProviderOllama, ProviderAnthropic},
	}

	if cfg.LLM.OllamaURL != "" {
		r.clients[ProviderOllama] = NewOllamaClient(cfg.LLM.OllamaURL, cfg.LLM.OllamaModel)
	}
	if cfg.LLM.AnthropicKey != "" {
		r.clients[ProviderAnthropic] = NewAnthropicClient(cfg.LLM.AnthropicKey, cfg.LLM.AnthropicModel)
	}

	if len(r.clients) == 0 {
		return nil, fmt.Errorf("no LLM providers configured")
	}

	return r, nil
}

// newRouterWithClients is used by tests to inject doubles.
func newRouterWithClients(defaultProvider Provider, clients map[Provider]Client) *Router {
	return &Router{
		defaultProvider: defaultProvider,
		clients:         clients,
		fallbacks:       []Provider{ProviderOllama, ProviderAnthropic},
	}
}

// Complete sends a completion request to the default provider, trying
// fallbacks in order when it is unavailable or fails.
func (r *Router) Complete(ctx context.Context, req *Request) (*Response, error) {
	var lastErr error
	for _, provider := range r.providerOrder() {
		client, ok := r.clients[provider]
		if !ok {
			continue
		}
		if !client.Available() {
			log.Debug().Str("provider", string(provider)).Msg("provider not available, trying next")
			continue
		}

		resp, err := client.Complete(ctx, req)
		if err != nil {
			log.Warn().Err(err).Str("provider", string(provider)).Msg("provider failed, trying next")
			lastErr = err
			continue
		}
		return resp, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all providers failed: %w", lastErr)
	}
	return nil, fmt.Errorf("no available LLM provider")
}

// HealthCheck verifies at least one provider is reachable
func (r *Router) HealthCheck() error {
	for _, client := range r.clients {
		if client.Available() {
			return nil
		}
	}
	return fmt.Errorf("no LLM provider available")
}

// providerOrder puts the default provider first, then the fallbacks.
func (r *Router) providerOrder() []Provider {
	order := []Provider{r.defaultProvider}
	for _, p := range r.fallbacks {
		if p != r.defaultProvider {
			order = append(order, p)
		}
	}
	return order
}
