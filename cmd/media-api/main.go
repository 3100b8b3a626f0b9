package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shariarfaisal/snapshop/internal/config"
	mediahandler "github.com/shariarfaisal/snapshop/internal/handlers/media"
	"github.com/shariarfaisal/snapshop/internal/middleware"
	mediaservice "github.com/shariarfaisal/snapshop/internal/services/media"
	"github.com/shariarfaisal/snapshop/internal/storage"
)

// Media API - accepts product media uploads from the admin form and
// serves them from the configured storage backend.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	log.Println("Starting media API...")

	cfg := config.Load()
	gin.SetMode(cfg.Gateway.GinMode)

	driver, err := storage.New(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage driver: %v", err)
	}

	uploadService := mediaservice.NewUploadService(driver, cfg.MediaAPI.MaxFileSize)
	uploadHandler := mediahandler.NewUploadHandler(uploadService)

	engine := gin.Default()

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "media-api"})
	})

	if cfg.Storage.Driver == "local" || cfg.Storage.Driver == "" {
		engine.Static("/uploads", cfg.Storage.UploadsPath)
	}

	protected := engine.Group("/media")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		protected.POST("/upload", uploadHandler.Upload)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.MediaAPI.Port),
		Handler: engine,
	}

	go func() {
		log.Printf("Media API listening on port %s (storage: %s)", cfg.MediaAPI.Port, cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down media API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Media API forced to shutdown: %v", err)
	}

	log.Println("Media API exited")
}
