package handlers

import (
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-optimizer/internal/models"
	"alfredoptarigan/resume-optimizer/internal/services"
)

type OptimizeHandler struct {
	optimizer      services.OptimizerService
	maxInputLength int
	logger         *logrus.Logger
}

func NewOptimizeHandler(
	optimizer services.OptimizerService,
	maxInputLength int,
	logger *logrus.Logger,
) *OptimizeHandler {
	return &OptimizeHandler{
		optimizer:      optimizer,
		maxInputLength: maxInputLength,
		logger:         logger,
	}
}

// HandleOptimize handles POST /optimize
func (h *OptimizeHandler) HandleOptimize(c *fiber.Ctx) error {
	var req models.OptimizeRequest

	// An unreadable body counts as a missing resume.
	if err := c.BodyParser(&req); err != nil || req.ResumeContent == nil {
		return respondError(c, services.NewValidationError("Resume content is required"))
	}

	// Length is counted in characters, not bytes.
	length := utf8.RuneCountInString(*req.ResumeContent)
	if length == 0 || length > h.maxInputLength {
		return respondError(c, services.NewValidationError(
			"Resume content must be between 1 and %d characters", h.maxInputLength))
	}

	requestID, _ := c.Locals(RequestIDKey).(string)

	result, err := h.optimizer.Optimize(c.UserContext(), services.OptimizationRequest{
		RequestID:      requestID,
		ResumeContent:  *req.ResumeContent,
		Guidelines:     req.Guidelines,
		JobDescription: req.JobDescription,
		CustomPrompt:   req.CustomPrompt,
		Provider:       strings.ToLower(strings.TrimSpace(req.AIProvider)),
		Model:          strings.TrimSpace(req.Model),
	})
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"kind":       services.KindOf(err).String(),
		}).WithError(err).Warn("⚠️  Optimize request failed")
		return respondError(c, err)
	}

	return c.JSON(models.OptimizeResponse{
		Status:           "success",
		OptimizedContent: result.Content,
		Provider:         result.Provider,
		Model:            result.Model,
	})
}
