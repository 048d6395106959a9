package models

// ProviderModelsResponse answers GET /models?provider=P.
type ProviderModelsResponse struct {
	Provider     string   `json:"provider"`
	Models       []string `json:"models"`
	DefaultModel string   `json:"default_model"`
}

type ProviderCatalog struct {
	Models       []string `json:"models"`
	DefaultModel string   `json:"default_model"`
}

// AllModelsResponse answers GET /models with no provider filter.
type AllModelsResponse struct {
	Providers map[string]ProviderCatalog `json:"providers"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
