package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-optimizer/internal/models"
	"alfredoptarigan/resume-optimizer/internal/services"
)

type ModelsHandler struct {
	registry services.ProviderRegistry
}

func NewModelsHandler(registry services.ProviderRegistry) *ModelsHandler {
	return &ModelsHandler{
		registry: registry,
	}
}

// HandleListModels handles GET /models[?provider=P]
func (h *ModelsHandler) HandleListModels(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if provider := strings.ToLower(strings.TrimSpace(c.Query("provider"))); provider != "" {
		available, defaultModel, err := h.registry.Catalog(ctx, provider)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(models.ProviderModelsResponse{
			Provider:     provider,
			Models:       available,
			DefaultModel: defaultModel,
		})
	}

	response := models.AllModelsResponse{
		Providers: make(map[string]models.ProviderCatalog),
	}

	for _, provider := range h.registry.Providers() {
		available, defaultModel, err := h.registry.Catalog(ctx, provider)
		if err != nil {
			return respondError(c, err)
		}

		response.Providers[provider] = models.ProviderCatalog{
			Models:       available,
			DefaultModel: defaultModel,
		}
	}

	return c.JSON(response)
}
