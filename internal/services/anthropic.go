package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicMaxTokens is required by the Messages API.
const anthropicMaxTokens = 4096

type anthropicClient struct {
	client anthropic.Client
}

// NewAnthropicClient creates a ProviderClient backed by the Anthropic SDK.
// An empty baseURL keeps the SDK default.
func NewAnthropicClient(apiKey, baseURL string, httpClient *http.Client) ProviderClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &anthropicClient{client: anthropic.NewClient(opts...)}
}

// ListModels implements ProviderClient.
func (c *anthropicClient) ListModels(ctx context.Context) ([]string, error) {
	page, err := c.client.Models.List(ctx, anthropic.ModelListParams{
		Limit: anthropic.Int(100),
	})
	if err != nil {
		return nil, unavailable(ProviderAnthropic, err)
	}

	ids := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		ids = append(ids, m.ID)
	}
	return filterByPrefix(ids, "claude"), nil
}

// Complete implements ProviderClient.
func (c *anthropicClient) Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   anthropicMaxTokens,
		Temperature: anthropic.Float(Temperature),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", requestFailed(ProviderAnthropic, err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", requestFailed(ProviderAnthropic, fmt.Errorf("no text content in response"))
}
