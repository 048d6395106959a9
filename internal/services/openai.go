package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

type openAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	lister     *modelLister
}

// NewOpenAIClient creates a ProviderClient for the OpenAI chat completions API.
// baseURL includes the version segment, e.g. https://api.openai.com/v1.
func NewOpenAIClient(apiKey, baseURL string, httpClient *http.Client) ProviderClient {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &openAIClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		lister: &modelLister{
			url:        baseURL + "/models",
			apiKey:     apiKey,
			httpClient: httpClient,
		},
	}
}

// ListModels implements ProviderClient.
func (c *openAIClient) ListModels(ctx context.Context) ([]string, error) {
	ids, err := c.lister.list(ctx)
	if err != nil {
		return nil, unavailable(ProviderOpenAI, err)
	}
	return filterByPrefix(ids, "gpt-4", "gpt-3"), nil
}

// Complete implements ProviderClient.
func (c *openAIClient) Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	llm, err := openai.New(
		openai.WithToken(c.apiKey),
		openai.WithBaseURL(c.baseURL),
		openai.WithModel(model),
		openai.WithHTTPClient(c.httpClient),
	)
	if err != nil {
		return "", requestFailed(ProviderOpenAI, fmt.Errorf("create client: %w", err))
	}

	return generate(ctx, ProviderOpenAI, llm, model, systemPrompt, userPrompt)
}

// generate runs a system + user exchange through any langchaingo model.
func generate(ctx context.Context, provider string, llm llms.Model, model, systemPrompt, userPrompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	resp, err := llm.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(Temperature),
	)
	if err != nil {
		return "", requestFailed(provider, err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", requestFailed(provider, fmt.Errorf("no choices in response"))
	}

	return resp.Choices[0].Content, nil
}
