package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

type geminiClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient creates a ProviderClient for the Gemini API. The genai
// client is built lazily per call because construction needs a context.
func NewGeminiClient(apiKey, baseURL string, httpClient *http.Client) ProviderClient {
	return &geminiClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (g *geminiClient) newClient(ctx context.Context) (*genai.Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:     g.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

// ListModels implements ProviderClient.
func (g *geminiClient) ListModels(ctx context.Context) ([]string, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return nil, unavailable(ProviderGemini, err)
	}

	page, err := client.Models.List(ctx, &genai.ListModelsConfig{})
	if err != nil {
		return nil, unavailable(ProviderGemini, err)
	}

	ids := make([]string, 0, len(page.Items))
	for _, m := range page.Items {
		ids = append(ids, strings.TrimPrefix(m.Name, "models/"))
	}
	return filterByPrefix(ids, "gemini"), nil
}

// Complete implements ProviderClient.
func (g *geminiClient) Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	client, err := g.newClient(ctx)
	if err != nil {
		return "", requestFailed(ProviderGemini, err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](Temperature),
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(userPrompt), config)
	if err != nil {
		return "", requestFailed(ProviderGemini, err)
	}

	if resp == nil {
		return "", requestFailed(ProviderGemini, fmt.Errorf("no response generated (nil response)"))
	}

	text := resp.Text()
	if text == "" {
		return "", requestFailed(ProviderGemini, fmt.Errorf("no text content in response"))
	}

	return text, nil
}
