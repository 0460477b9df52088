package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tech-sunvi/gas-gomission/config"
	"github.com/tech-sunvi/gas-gomission/internal/api/handler"
	"github.com/tech-sunvi/gas-gomission/internal/api/middleware"
)

// Setup initialise et retourne le moteur de routage Gin
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globaux ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── Sonde de santé ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Autocomplétion des formulaires
		search := v1.Group("/search")
		{
			search.GET("/employees", h.Search.Employees)
			search.GET("/destinations", h.Search.Destinations)
			search.GET("/transport", h.Search.TransportMeans)
			search.GET("/budgets", h.Search.Budgets)
		}

		// Dossiers du personnel
		v1.GET("/personnel/:id", h.Personnel.GetRecord)
		v1.POST("/personnel", h.Personnel.UpsertRecord)

		// Ordres de mission
		v1.POST("/missions", h.Mission.Submit)
		v1.GET("/missions/:id/calendar", h.Mission.Calendar)

		// Tables de référence
		v1.POST("/destinations", h.Reference.AddDestination)
		v1.POST("/vehicles", h.Reference.AddVehicle)

		// Documents générés
		v1.GET("/documents/:id", h.Document.Get)
	}

	return r
}
