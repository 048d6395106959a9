package services

import (
	"context"
	"strings"
)

// SystemPrompt is sent as the system message of every completion request.
const SystemPrompt = "You are a professional resume optimization assistant."

// Temperature is fixed for all providers.
const Temperature = 0.7

// ProviderClient wraps one chat-completion API.
type ProviderClient interface {
	// ListModels returns the chat-capable model ids the provider currently offers.
	ListModels(ctx context.Context) ([]string, error)
	// Complete sends a single-turn chat request and returns the first choice text.
	Complete(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderMistral   = "mistral"
	ProviderGemini    = "gemini"
)

// fallbackModels is used when a provider's live model listing fails.
// The first entry of each list is the implicit default.
var fallbackModels = map[string][]string{
	ProviderOpenAI: {
		"gpt-4-turbo-preview",
		"gpt-4",
		"gpt-3.5-turbo",
	},
	ProviderAnthropic: {
		"claude-3-opus-20240229",
		"claude-3-sonnet-20240229",
		"claude-2.1",
	},
	ProviderMistral: {
		"mistral-large-latest",
		"mistral-medium-latest",
		"mistral-small-latest",
	},
	ProviderGemini: {
		"gemini-2.5-flash",
		"gemini-2.5-pro",
		"gemini-2.0-flash",
	},
}

// FallbackModels returns a copy of the static model list for provider.
func FallbackModels(provider string) []string {
	models := fallbackModels[provider]
	out := make([]string, len(models))
	copy(out, models)
	return out
}

// filterByPrefix keeps ids starting with any of prefixes, preserving order.
// With no prefixes every id is kept.
func filterByPrefix(ids []string, prefixes ...string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if len(prefixes) == 0 {
			out = append(out, id)
			continue
		}
		for _, p := range prefixes {
			if strings.HasPrefix(id, p) {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

func unavailable(provider string, err error) error {
	return newError(KindProviderUnavailable, err, "failed to list %s models: %v", provider, err)
}

func requestFailed(provider string, err error) error {
	return newError(KindProviderRequestFailed, err, "%s completion request failed: %v", provider, err)
}
