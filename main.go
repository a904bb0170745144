package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"checkin-backend/config"
	"checkin-backend/database"
	"checkin-backend/handlers"
	"checkin-backend/metrics"
	"checkin-backend/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Unable to load configuration: %v\n", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Unable to open database: %v\n", err)
	}
	defer db.Close()

	// Create handlers
	userHandler := handlers.NewUserHandler(db)
	scanHandler := handlers.NewScanHandler(db)

	// Setup Gin
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestID(), middleware.Metrics())

	// API routes
	router.GET("/users", userHandler.ListUsers)
	router.GET("/users/:identifier", userHandler.GetUser)
	router.PUT("/users/:identifier", userHandler.UpdateUser)
	router.POST("/scan/:identifier", scanHandler.RecordScan)
	router.GET("/scans", scanHandler.ListScanFrequencies)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Server starting on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v\n", err)
	}
}
