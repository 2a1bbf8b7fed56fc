package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ylk14/SmartPlant-sub001/anomaly"
	"github.com/ylk14/SmartPlant-sub001/config"
	"github.com/ylk14/SmartPlant-sub001/controllers"
	"github.com/ylk14/SmartPlant-sub001/ingest"
	"github.com/ylk14/SmartPlant-sub001/logger"
	"github.com/ylk14/SmartPlant-sub001/middlewares"
	"github.com/ylk14/SmartPlant-sub001/store"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	log := logger.WithComponent("main")

	// Connect to PostgreSQL database
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := controllers.MigrateModels(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate models")
	}

	hub := controllers.NewHub()
	evaluator := anomaly.NewEvaluator(cfg.Thresholds)
	pipeline := ingest.NewPipeline(evaluator, store.NewReadingStore(db), hub.BroadcastReading)
	api := controllers.NewAPI(cfg, db, pipeline, hub)

	// Telemetry arrives over MQTT; the HTTP ingestion route shares the pipeline.
	subscriber := ingest.NewSubscriber(cfg, pipeline)
	if err := subscriber.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MQTT broker")
	}
	defer subscriber.Stop()

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.POST("/signup", api.Signup)
	r.POST("/login", api.Login)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes using auth middleware
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware([]byte(cfg.JWTSecret)))
	auth.GET("/ws", api.HandleWebSocket)
	auth.POST("/sensor-data", api.ReceiveData)
	auth.GET("/devices", api.GetDevices)
	auth.POST("/devices", api.RegisterDevice)
	auth.GET("/devices/status", api.GetAllDeviceStatuses)
	auth.GET("/devices/:id/status", api.GetDeviceStatus)
	auth.GET("/devices/:id/history", api.GetHistory)
	auth.POST("/devices/:id/resolve-alerts", api.ResolveDeviceAlerts)
	auth.GET("/alerts", api.GetActiveAlerts)
	auth.POST("/alerts/:id/resolve", api.ResolveAlert)
	auth.GET("/species", api.GetSpecies)
	auth.POST("/chatbot", api.Chat)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
