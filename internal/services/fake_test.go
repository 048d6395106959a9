package services

import (
	"context"
	"errors"
	"net/http"
)

type fakeClient struct {
	models      []string
	listErr     error
	reply       string
	completeErr error

	completeCalls int
	gotModel      string
	gotSystem     string
	gotPrompt     string
}

func (f *fakeClient) ListModels(_ context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.models, nil
}

func (f *fakeClient) Complete(_ context.Context, model, systemPrompt, userPrompt string) (string, error) {
	f.completeCalls++
	f.gotModel = model
	f.gotSystem = systemPrompt
	f.gotPrompt = userPrompt
	return f.reply, f.completeErr
}

var errAPI = errors.New("API Error")

// fakeFactories returns factories that hand out the given clients.
func fakeFactories(clients map[string]*fakeClient) map[string]ClientFactory {
	factories := make(map[string]ClientFactory, len(clients))
	for name, c := range clients {
		factories[name] = func(ProviderSettings, *http.Client) ProviderClient { return c }
	}
	return factories
}

func testRegistryConfig() RegistryConfig {
	return RegistryConfig{
		DefaultProvider: ProviderMistral,
		Supported:       []string{ProviderOpenAI, ProviderAnthropic, ProviderMistral},
		Providers:       map[string]ProviderSettings{},
	}
}
