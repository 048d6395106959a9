package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-optimizer/internal/logging"
)

func TestResolve_DefaultsToFirstCatalogEntry(t *testing.T) {
	clients := map[string]*fakeClient{
		ProviderOpenAI:    {models: []string{"gpt-4o", "gpt-4"}},
		ProviderAnthropic: {listErr: errAPI},
		ProviderMistral:   {models: []string{"mistral-small-latest", "mistral-large-latest"}},
	}
	reg := NewProviderRegistry(testRegistryConfig(), fakeFactories(clients), logging.Discard())

	for _, provider := range reg.Providers() {
		t.Run(provider, func(t *testing.T) {
			catalog, _, err := reg.Catalog(context.Background(), provider)
			require.NoError(t, err)

			_, model, err := reg.Resolve(context.Background(), provider, "")
			require.NoError(t, err)
			assert.Equal(t, catalog[0], model)
		})
	}
}

func TestResolve_EmptyProviderUsesDefault(t *testing.T) {
	mistral := &fakeClient{models: []string{"mistral-large-latest"}}
	reg := NewProviderRegistry(testRegistryConfig(), fakeFactories(map[string]*fakeClient{
		ProviderMistral: mistral,
	}), logging.Discard())

	client, model, err := reg.Resolve(context.Background(), "", "")
	require.NoError(t, err)
	assert.Same(t, mistral, client)
	assert.Equal(t, "mistral-large-latest", model)
}

func TestResolve_ExplicitModel(t *testing.T) {
	reg := NewProviderRegistry(testRegistryConfig(), fakeFactories(map[string]*fakeClient{
		ProviderMistral: {models: []string{"mistral-large-latest", "mistral-medium-latest"}},
	}), logging.Discard())

	_, model, err := reg.Resolve(context.Background(), ProviderMistral, "mistral-medium-latest")
	require.NoError(t, err)
	assert.Equal(t, "mistral-medium-latest", model)
}

func TestResolve_InvalidModel(t *testing.T) {
	clients := map[string]*fakeClient{
		ProviderOpenAI:    {models: []string{"gpt-4"}},
		ProviderAnthropic: {listErr: errAPI},
		ProviderMistral:   {models: []string{"mistral-large-latest"}},
	}
	reg := NewProviderRegistry(testRegistryConfig(), fakeFactories(clients), logging.Discard())

	for _, provider := range reg.Providers() {
		_, _, err := reg.Resolve(context.Background(), provider, "invalid-model")
		require.Error(t, err, provider)
		assert.Equal(t, KindInvalidModel, KindOf(err), provider)
		assert.Contains(t, err.Error(), "Invalid model")
	}
	assert.Zero(t, clients[ProviderOpenAI].completeCalls)
}

func TestResolve_UnsupportedProvider(t *testing.T) {
	reg := NewProviderRegistry(testRegistryConfig(), DefaultFactories(), logging.Discard())

	_, _, err := reg.Resolve(context.Background(), "unknown-provider", "")
	require.Error(t, err)
	assert.Equal(t, KindUnsupportedProvider, KindOf(err))
	assert.Equal(t, "Unsupported AI provider: unknown-provider", err.Error())
}

func TestResolve_KnownButDisabledProvider(t *testing.T) {
	// gemini has a client but is not in the default supported set.
	reg := NewProviderRegistry(testRegistryConfig(), DefaultFactories(), logging.Discard())

	_, _, err := reg.Resolve(context.Background(), ProviderGemini, "")
	assert.Equal(t, KindUnsupportedProvider, KindOf(err))
}

func TestResolve_NoModelsAvailable(t *testing.T) {
	reg := NewProviderRegistry(testRegistryConfig(), fakeFactories(map[string]*fakeClient{
		ProviderMistral: {models: []string{}},
	}), logging.Discard())

	_, _, err := reg.Resolve(context.Background(), ProviderMistral, "")
	require.Error(t, err)
	assert.Equal(t, KindNoModelsAvailable, KindOf(err))
}

func TestResolve_ConfiguredDefaultModel(t *testing.T) {
	cfg := testRegistryConfig()
	cfg.Providers[ProviderMistral] = ProviderSettings{DefaultModel: "mistral-small-latest"}
	reg := NewProviderRegistry(cfg, fakeFactories(map[string]*fakeClient{
		ProviderMistral: {listErr: errAPI},
	}), logging.Discard())

	_, model, err := reg.Resolve(context.Background(), ProviderMistral, "")
	require.NoError(t, err)
	assert.Equal(t, "mistral-small-latest", model)
}

func TestResolve_ConfiguredDefaultModelMustBeInCatalog(t *testing.T) {
	cfg := testRegistryConfig()
	cfg.Providers[ProviderMistral] = ProviderSettings{DefaultModel: "retired-model"}
	reg := NewProviderRegistry(cfg, fakeFactories(map[string]*fakeClient{
		ProviderMistral: {models: []string{"mistral-large-latest"}},
	}), logging.Discard())

	_, _, err := reg.Resolve(context.Background(), ProviderMistral, "")
	assert.Equal(t, KindInvalidModel, KindOf(err))
}

func TestCatalog_FallsBackWhenListingFails(t *testing.T) {
	reg := NewProviderRegistry(testRegistryConfig(), fakeFactories(map[string]*fakeClient{
		ProviderMistral: {listErr: unavailable(ProviderMistral, errAPI)},
	}), logging.Discard())

	models, defaultModel, err := reg.Catalog(context.Background(), ProviderMistral)
	require.NoError(t, err)
	assert.Equal(t, []string{"mistral-large-latest", "mistral-medium-latest", "mistral-small-latest"}, models)
	assert.Equal(t, "mistral-large-latest", defaultModel)
}

func TestCatalog_DefaultModelOverride(t *testing.T) {
	cfg := testRegistryConfig()
	cfg.Providers[ProviderMistral] = ProviderSettings{DefaultModel: "mistral-medium-latest"}
	reg := NewProviderRegistry(cfg, fakeFactories(map[string]*fakeClient{
		ProviderMistral: {models: []string{"mistral-large-latest", "mistral-medium-latest"}},
	}), logging.Discard())

	_, defaultModel, err := reg.Catalog(context.Background(), ProviderMistral)
	require.NoError(t, err)
	assert.Equal(t, "mistral-medium-latest", defaultModel)
}

func TestCatalog_RequeriesEveryCall(t *testing.T) {
	mistral := &fakeClient{models: []string{"a"}}
	reg := NewProviderRegistry(testRegistryConfig(), fakeFactories(map[string]*fakeClient{
		ProviderMistral: mistral,
	}), logging.Discard())

	first, _, err := reg.Catalog(context.Background(), ProviderMistral)
	require.NoError(t, err)
	mistral.models = []string{"b"}
	second, _, err := reg.Catalog(context.Background(), ProviderMistral)
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, first)
	assert.Equal(t, []string{"b"}, second)
}

func TestNewProviderRegistry_DropsProvidersWithoutClient(t *testing.T) {
	cfg := testRegistryConfig()
	cfg.Supported = []string{ProviderMistral, "deepseek"}
	reg := NewProviderRegistry(cfg, DefaultFactories(), logging.Discard())

	assert.Equal(t, []string{ProviderMistral}, reg.Providers())
}

func TestFallbackModels_ReturnsCopy(t *testing.T) {
	models := FallbackModels(ProviderOpenAI)
	models[0] = "changed"
	assert.Equal(t, "gpt-4-turbo-preview", FallbackModels(ProviderOpenAI)[0])
	assert.Empty(t, FallbackModels("unknown"))
}
