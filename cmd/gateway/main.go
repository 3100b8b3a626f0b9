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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/shariarfaisal/snapshop/internal/cache"
	"github.com/shariarfaisal/snapshop/internal/config"
	"github.com/shariarfaisal/snapshop/internal/repository"
	"github.com/shariarfaisal/snapshop/internal/routing"
	"github.com/shariarfaisal/snapshop/internal/tenants"
)

// Gateway - the edge in front of the admin app, the storefront and the
// backend API. Resolves the tenant from the host header, applies
// protected-route gating for the admin app and rewrites storefront
// requests onto their tenant-scoped internal path.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	log.Println("Starting gateway...")

	cfg := config.Load()
	gin.SetMode(cfg.Gateway.GinMode)

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.MasterDB.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to master DB: %v", err)
	}

	redisClient, err := cache.NewClient(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize Redis client: %v", err)
	}

	storeRepo := repository.NewStoreRepository(pool)
	registry := tenants.NewRegistry(storeRepo, redisClient)
	router := routing.NewRouter(cfg.Gateway.RootDomain, registry)

	handler, err := routing.Gateway(routing.GatewayOptions{
		Router:             router,
		AdminUpstream:      cfg.Gateway.AdminUpstream,
		StorefrontUpstream: cfg.Gateway.StorefrontUpstream,
		APIUpstream:        cfg.Gateway.APIUpstream,
		SecureCookies:      cfg.Gateway.SecureCookies,
	})
	if err != nil {
		log.Fatalf("Failed to build gateway handler: %v", err)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gateway"})
	})
	engine.NoRoute(handler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Gateway.Port),
		Handler: engine,
	}

	go func() {
		log.Printf("Gateway listening on port %s (root domain: %s)", cfg.Gateway.Port, cfg.Gateway.RootDomain)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gateway...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Gateway forced to shutdown: %v", err)
	}

	pool.Close()
	redisClient.Close()

	log.Println("Gateway exited")
}
