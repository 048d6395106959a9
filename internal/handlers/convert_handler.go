package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-optimizer/internal/models"
	"alfredoptarigan/resume-optimizer/internal/services"
)

type ConvertHandler struct {
	storageService services.StorageService
	parser         services.DocumentParserService
	maxFileSize    int64
	logger         *logrus.Logger
}

func NewConvertHandler(
	storageService services.StorageService,
	parser services.DocumentParserService,
	maxFileSize int64,
	logger *logrus.Logger,
) *ConvertHandler {
	return &ConvertHandler{
		storageService: storageService,
		parser:         parser,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// HandleConvert handles POST /convert with a multipart "file" field.
func (h *ConvertHandler) HandleConvert(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return respondError(c, services.NewValidationError("No file uploaded. Please upload a document as 'file'."))
	}

	if file.Size > h.maxFileSize {
		return respondError(c, services.NewValidationError("File too large. Max size: %d bytes", h.maxFileSize))
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return respondError(c, err)
	}
	defer func() {
		if err := h.storageService.DeleteFile(filename); err != nil {
			h.logger.WithError(err).WithField("filename", filename).Warn("⚠️  Failed to remove upload")
		}
	}()

	content, err := h.parser.ExtractText(filePath)
	if err != nil {
		if services.KindOf(err) == services.KindValidation {
			return respondError(c, err)
		}
		return respondError(c, fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("failed to extract text: %v", err)))
	}

	h.logger.WithFields(logrus.Fields{
		"original_name": file.Filename,
		"pages":         content.PageCount,
	}).Infof("📄 Converted document: %d characters", len(content.Text))

	return c.JSON(models.ConvertResponse{
		Data: models.ConvertedDocument{
			Text:     content.Text,
			Filename: file.Filename,
			Pages:    content.PageCount,
		},
	})
}
