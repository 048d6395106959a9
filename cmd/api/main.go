package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/resume-optimizer/internal/config"
	"alfredoptarigan/resume-optimizer/internal/handlers"
	"alfredoptarigan/resume-optimizer/internal/logging"
	"alfredoptarigan/resume-optimizer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logging.New(cfg.Server.Debug)
	log.Println("✅ Config loaded successfully")

	// Initialize providers
	registry := services.NewProviderRegistry(cfg.RegistryConfig(), services.DefaultFactories(), log)
	log.WithField("providers", registry.Providers()).
		WithField("default", registry.DefaultProvider()).
		Println("✅ Provider registry initialized")

	if _, err := services.LoadTemplate(cfg.Prompt.BasePromptPath); err != nil {
		log.WithError(err).Warn("⚠️  Base prompt not readable yet, /optimize will fail until it exists")
	}

	optimizerService := services.NewOptimizerService(registry, cfg.Prompt.BasePromptPath, log)
	log.Println("✅ Optimizer service initialized")

	app := handlers.NewOptimizerApp(registry, optimizerService, cfg.Prompt.MaxInputLength, log)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
