package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/911ray911/GIDS-Medium/internal/api"
	"github.com/911ray911/GIDS-Medium/internal/config"
	"github.com/911ray911/GIDS-Medium/internal/service/zone"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize and load the zone service
	zones := initializeZoneService(cfg, logger)

	// Setup and run API server
	runAPIServer(cfg, zones, logger)
}

func initializeZoneService(cfg config.Config, logger *zap.Logger) *zone.ZoneService {
	zones := zone.NewZoneService(logger)

	// A failed load is terminal for the data layer only: the server
	// still comes up and serves the base map and legend
	if err := zones.InitService(context.Background(), cfg.ZonesPath); err != nil {
		logger.Error("Zone data load failed, serving without zone layer",
			zap.String("path", cfg.ZonesPath),
			zap.Error(err))
	}

	return zones
}

func runAPIServer(cfg config.Config, zones *zone.ZoneService, logger *zap.Logger) {
	// Initialize Gin router
	r := gin.Default()

	// Configure API routes
	api.SetupRouter(r, cfg, zones, logger)

	// Start the server
	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
