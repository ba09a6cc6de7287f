package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/911ray911/GIDS-Medium/internal/config"
	"github.com/911ray911/GIDS-Medium/internal/render"
	"github.com/911ray911/GIDS-Medium/internal/service/zone"
	"github.com/911ray911/GIDS-Medium/internal/util"
	"github.com/911ray911/GIDS-Medium/internal/web"
)

// SetupMainHandlers registers the map page and health endpoints
func SetupMainHandlers(router *gin.RouterGroup, cfg config.Config, zones *zone.ZoneService, logger *zap.Logger) {
	router.GET("/", func(c *gin.Context) {
		data := web.PageData{
			Title:           "SSI Zone Map",
			Legend:          render.LegendHTML(),
			TileURL:         cfg.TileURL,
			TileAttribution: cfg.TileAttribution,
			CenterLat:       cfg.MapCenterLat,
			CenterLng:       cfg.MapCenterLng,
			Zoom:            cfg.MapZoom,
			FitPadding:      cfg.FitPaddingPx,
			HoverOpacity:    render.FillOpacityHover,
		}
		if bound, ok := zones.Bound(); ok {
			ll := util.LeafletBounds(bound)
			data.HasBounds = true
			data.SWLat, data.SWLng = ll[0][0], ll[0][1]
			data.NELat, data.NELng = ll[1][0], ll[1][1]
			// Center on the data rather than the configured default
			data.CenterLat, data.CenterLng = util.BoundCenter(bound)
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := web.RenderPage(c.Writer, data); err != nil {
			logger.Error("Map page render failed", zap.Error(err))
		}
	})

	router.GET("/api/health", func(c *gin.Context) {
		status := gin.H{
			"status": "healthy",
			"zones":  zones.Count(),
		}
		if err := zones.LoadError(); err != nil {
			status["zone_data"] = "unavailable"
		} else {
			status["zone_data"] = "loaded"
		}
		c.JSON(http.StatusOK, status)
	})
}
