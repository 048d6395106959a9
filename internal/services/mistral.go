package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms/mistral"
)

// defaultMistralEndpoint has no version segment; the SDK appends /v1/...
const defaultMistralEndpoint = "https://api.mistral.ai"

type mistralClient struct {
	apiKey   string
	endpoint string
	timeout  time.Duration
	lister   *modelLister
}

// NewMistralClient creates a ProviderClient for the Mistral chat API. The
// completion SDK builds its own http.Client, so only httpClient's Timeout
// carries over to completions.
func NewMistralClient(apiKey, endpoint string, httpClient *http.Client) ProviderClient {
	if endpoint == "" {
		endpoint = defaultMistralEndpoint
	}
	endpoint = strings.TrimRight(endpoint, "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &mistralClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		timeout:  httpClient.Timeout,
		lister: &modelLister{
			url:        endpoint + "/v1/models",
			apiKey:     apiKey,
			httpClient: httpClient,
		},
	}
}

// ListModels implements ProviderClient. Mistral only serves chat models, so
// nothing is filtered out.
func (c *mistralClient) ListModels(ctx context.Context) ([]string, error) {
	ids, err := c.lister.list(ctx)
	if err != nil {
		return nil, unavailable(ProviderMistral, err)
	}
	return filterByPrefix(ids), nil
}

// Complete implements ProviderClient.
func (c *mistralClient) Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	opts := []mistral.Option{
		mistral.WithAPIKey(c.apiKey),
		mistral.WithEndpoint(c.endpoint),
		mistral.WithModel(model),
	}
	if c.timeout > 0 {
		opts = append(opts, mistral.WithTimeout(c.timeout))
	}

	llm, err := mistral.New(opts...)
	if err != nil {
		return "", requestFailed(ProviderMistral, fmt.Errorf("create client: %w", err))
	}

	return generate(ctx, ProviderMistral, llm, model, systemPrompt, userPrompt)
}
