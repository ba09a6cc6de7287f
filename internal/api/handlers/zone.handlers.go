package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/911ray911/GIDS-Medium/internal/render"
	"github.com/911ray911/GIDS-Medium/internal/service/zone"
)

// SetupZoneHandlers registers the zone data endpoints
func SetupZoneHandlers(router *gin.RouterGroup, zones *zone.ZoneService, logger *zap.Logger) {
	zoneGroup := router.Group("/zones")

	zoneGroup.GET("", func(c *gin.Context) {
		fc, err := zones.Collection()
		if err != nil {
			logger.Error("Zone collection unavailable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "zone_data_unavailable",
				"message": "Zone data could not be loaded: " + err.Error() + ". Check that the zone GeoJSON file exists at the configured path on the server.",
			})
			return
		}
		c.JSON(http.StatusOK, fc)
	})

	zoneGroup.GET("/:id/popup", func(c *gin.Context) {
		z, ok := zones.Zone(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "zone_not_found",
				"message": "No zone with id " + c.Param("id"),
			})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.PopupHTML(z)))
	})
}
