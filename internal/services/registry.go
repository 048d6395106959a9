package services

import (
	"context"
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
)

// ProviderSettings holds the per-provider values read from configuration.
type ProviderSettings struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
}

// RegistryConfig is the explicit configuration the registry resolves against.
type RegistryConfig struct {
	DefaultProvider string
	Supported       []string
	Providers       map[string]ProviderSettings
	HTTPClient      *http.Client
}

// ClientFactory builds a ProviderClient from its settings.
type ClientFactory func(settings ProviderSettings, httpClient *http.Client) ProviderClient

// DefaultFactories maps every known provider to its client constructor.
// Adding a provider means adding an entry here and a fallback list.
func DefaultFactories() map[string]ClientFactory {
	return map[string]ClientFactory{
		ProviderOpenAI: func(s ProviderSettings, hc *http.Client) ProviderClient {
			return NewOpenAIClient(s.APIKey, s.BaseURL, hc)
		},
		ProviderAnthropic: func(s ProviderSettings, hc *http.Client) ProviderClient {
			return NewAnthropicClient(s.APIKey, s.BaseURL, hc)
		},
		ProviderMistral: func(s ProviderSettings, hc *http.Client) ProviderClient {
			return NewMistralClient(s.APIKey, s.BaseURL, hc)
		},
		ProviderGemini: func(s ProviderSettings, hc *http.Client) ProviderClient {
			return NewGeminiClient(s.APIKey, s.BaseURL, hc)
		},
	}
}

// ProviderRegistry constructs provider clients and resolves models.
// Model catalogs are not cached: every call re-queries the provider.
type ProviderRegistry interface {
	Providers() []string
	DefaultProvider() string
	Resolve(ctx context.Context, provider, model string) (ProviderClient, string, error)
	Catalog(ctx context.Context, provider string) ([]string, string, error)
}

type providerRegistry struct {
	cfg       RegistryConfig
	factories map[string]ClientFactory
	logger    *logrus.Logger
}

// NewProviderRegistry builds a registry using the given factories. Supported
// providers without a factory are dropped with a warning.
func NewProviderRegistry(cfg RegistryConfig, factories map[string]ClientFactory, logger *logrus.Logger) ProviderRegistry {
	supported := make([]string, 0, len(cfg.Supported))
	for _, name := range cfg.Supported {
		if _, ok := factories[name]; !ok {
			logger.WithField("provider", name).Warn("⚠️  No client available for provider, ignoring")
			continue
		}
		supported = append(supported, name)
	}
	cfg.Supported = supported

	return &providerRegistry{
		cfg:       cfg,
		factories: factories,
		logger:    logger,
	}
}

// Providers implements ProviderRegistry.
func (r *providerRegistry) Providers() []string {
	return slices.Clone(r.cfg.Supported)
}

// DefaultProvider implements ProviderRegistry.
func (r *providerRegistry) DefaultProvider() string {
	return r.cfg.DefaultProvider
}

func (r *providerRegistry) client(provider string) (ProviderClient, error) {
	if !slices.Contains(r.cfg.Supported, provider) {
		return nil, newError(KindUnsupportedProvider, nil, "Unsupported AI provider: %s", provider)
	}
	return r.factories[provider](r.cfg.Providers[provider], r.cfg.HTTPClient), nil
}

// models asks the provider for its catalog, substituting the fallback list
// when the live call fails.
func (r *providerRegistry) models(ctx context.Context, provider string, client ProviderClient) []string {
	models, err := client.ListModels(ctx)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"provider": provider,
			"error":    err,
		}).Warn("⚠️  Using fallback models")
		return FallbackModels(provider)
	}

	r.logger.WithFields(logrus.Fields{
		"provider": provider,
		"models":   models,
	}).Debug("📋 Fetched models")
	return models
}

// Resolve implements ProviderRegistry.
func (r *providerRegistry) Resolve(ctx context.Context, provider, model string) (ProviderClient, string, error) {
	if provider == "" {
		provider = r.cfg.DefaultProvider
	}

	client, err := r.client(provider)
	if err != nil {
		return nil, "", err
	}

	available := r.models(ctx, provider, client)

	if model == "" {
		model = r.cfg.Providers[provider].DefaultModel
	}
	if model == "" {
		if len(available) == 0 {
			return nil, "", newError(KindNoModelsAvailable, nil, "No models available for provider '%s'", provider)
		}
		model = available[0]
	}

	if !slices.Contains(available, model) {
		return nil, "", newError(KindInvalidModel, nil, "Invalid model '%s' for provider '%s'", model, provider)
	}

	return client, model, nil
}

// Catalog implements ProviderRegistry. The default model is the configured
// override when set, otherwise the first catalog entry.
func (r *providerRegistry) Catalog(ctx context.Context, provider string) ([]string, string, error) {
	client, err := r.client(provider)
	if err != nil {
		return nil, "", err
	}

	available := r.models(ctx, provider, client)

	defaultModel := r.cfg.Providers[provider].DefaultModel
	if defaultModel == "" && len(available) > 0 {
		defaultModel = available[0]
	}

	return available, defaultModel, nil
}
