package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-optimizer/internal/services"
)

// RequestIDKey is the fiber Locals key holding the request id.
const RequestIDKey = "requestid"

func newApp(name string, bodyLimit int, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		ReadTimeout:           30 * time.Second,
		BodyLimit:             bodyLimit,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     log.Out,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	return app
}

// NewOptimizerApp wires the resume optimizer routes under /api/v1.
func NewOptimizerApp(
	registry services.ProviderRegistry,
	optimizer services.OptimizerService,
	maxInputLength int,
	log *logrus.Logger,
) *fiber.App {
	app := newApp("Resume Optimizer API", fiber.DefaultBodyLimit, log)

	modelsHandler := NewModelsHandler(registry)
	optimizeHandler := NewOptimizeHandler(optimizer, maxInputLength, log)

	api := app.Group("/api/v1")
	api.Get("/health", HandleHealth)
	api.Get("/models", modelsHandler.HandleListModels)
	api.Post("/optimize", optimizeHandler.HandleOptimize)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Optimizer API",
			"version": Version,
			"endpoints": []string{
				"GET /api/v1/health",
				"GET /api/v1/models",
				"POST /api/v1/optimize",
			},
		})
	})

	return app
}

// NewConverterApp wires the document conversion routes under /api/v1.
func NewConverterApp(
	storageService services.StorageService,
	parser services.DocumentParserService,
	maxFileSize int64,
	log *logrus.Logger,
) *fiber.App {
	// Leave headroom for the multipart envelope.
	app := newApp("Document Converter API", int(maxFileSize)+64*1024, log)

	convertHandler := NewConvertHandler(storageService, parser, maxFileSize, log)

	api := app.Group("/api/v1")
	api.Get("/health", HandleHealth)
	api.Post("/convert", convertHandler.HandleConvert)

	return app
}
