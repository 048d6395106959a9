package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-optimizer/internal/models"
	"alfredoptarigan/resume-optimizer/internal/services"
)

// statusByKind separates client mistakes from provider-side failures.
var statusByKind = map[services.Kind]int{
	services.KindValidation:            fiber.StatusBadRequest,
	services.KindUnsupportedProvider:   fiber.StatusBadRequest,
	services.KindInvalidModel:          fiber.StatusBadRequest,
	services.KindNoModelsAvailable:     fiber.StatusServiceUnavailable,
	services.KindProviderUnavailable:   fiber.StatusServiceUnavailable,
	services.KindProviderRequestFailed: fiber.StatusBadGateway,
	services.KindOptimizationFailed:    fiber.StatusBadGateway,
	services.KindTemplateNotFound:      fiber.StatusInternalServerError,
}

// StatusFor maps an error to the HTTP status reported to the caller.
func StatusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	if code, ok := statusByKind[services.KindOf(err)]; ok {
		return code
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(models.ErrorResponse{
		Error: err.Error(),
	})
}

// ErrorHandler is the app-wide fiber error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}
