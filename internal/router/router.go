package router

import (
	"strings"

	"github.com/Alecrity/tough-as-a-tank-final/internal/config"
	"github.com/Alecrity/tough-as-a-tank-final/internal/handlers"
	"github.com/Alecrity/tough-as-a-tank-final/internal/middleware"
	"github.com/Alecrity/tough-as-a-tank-final/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New assembles the gin engine: middleware, swagger, metrics, and the
// participant API consumed by the popup widget and staff tools.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	participantService := services.NewParticipantService(db)

	participantHandler := handlers.NewParticipantHandler(participantService)
	exportHandler := handlers.NewExportHandler(participantService)
	healthHandler := handlers.NewHealthHandler(participantService)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-ID"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/register",
			middleware.RateLimit(cfg.RegisterRateLimit, cfg.RegisterRateBurst),
			participantHandler.Register)
		api.GET("/participant-count", participantHandler.Count)
		api.GET("/participants", participantHandler.List)
		api.DELETE("/participants/:id", participantHandler.Delete)
		api.POST("/scores/:id", participantHandler.UpdateScore)
		api.GET("/leaderboard", participantHandler.Leaderboard)
		api.GET("/export-csv", exportHandler.ExportCSV)
		api.GET("/health", healthHandler.Health)
	}

	return r
}
