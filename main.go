package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/sweetstore/sweetstore-api/config"
	"github.com/sweetstore/sweetstore-api/metrics"
	"github.com/sweetstore/sweetstore-api/middleware"
	"github.com/sweetstore/sweetstore-api/routes"
	"github.com/sweetstore/sweetstore-api/service"
	"github.com/sweetstore/sweetstore-api/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	log.SetFormatter(&log.JSONFormatter{})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Init store
	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("❌ MongoDB connection failed: %v", err)
	}
	defer func() {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = st.Close(shutdownCtx)
	}()

	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("❌ Index creation failed: %v", err)
	}

	// Business id counters, seeded from the current collection maxima.
	// Single-instance only; see store.Counters.
	counters, err := store.NewCounters(ctx, st)
	if err != nil {
		log.Fatalf("❌ Counter initialization failed: %v", err)
	}

	if cfg.SeedOnStart {
		if err := store.Seed(ctx, st, counters); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
		log.Println("✅ Seed data verified")
	}

	svc := service.New(st, counters)

	// Gin setup
	r := gin.Default()

	// CORS settings for the storefront frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID)
	r.Use(metrics.PrometheusMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup routes
	routes.SetupRoutes(r, svc)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
