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
	cfg := config.Load()
	log := logging.New(cfg.Server.Debug)

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	parser := services.NewDocumentParserService()
	log.Println("✅ Services initialized successfully")

	app := handlers.NewConverterApp(storageService, parser, cfg.Storage.MaxFileSize, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("🛑 Shutting down converter...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Converter forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Converter.Port)
	log.Printf("🚀 Converter starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start converter: %v", err)
	}
}
