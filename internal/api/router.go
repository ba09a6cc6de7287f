package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	routes "github.com/911ray911/GIDS-Medium/internal/api/handlers"
	"github.com/911ray911/GIDS-Medium/internal/config"
	"github.com/911ray911/GIDS-Medium/internal/service/zone"
)

// SetupRouter initializes all application routes
func SetupRouter(r *gin.Engine, cfg config.Config, zones *zone.ZoneService, logger *zap.Logger) {
	// API group
	api := r.Group("/api")

	// Setup main handlers (map page, health)
	routes.SetupMainHandlers(r.Group(""), cfg, zones, logger)

	// Setup zone data handlers
	routes.SetupZoneHandlers(api, zones, logger)
}
