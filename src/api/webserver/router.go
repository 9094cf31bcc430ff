package webserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/truthlens/truthlens/src/api/config"
	"github.com/truthlens/truthlens/src/api/middleware"
	"gorm.io/gorm"
)

// Version reported by the status and health endpoints.
const Version = "2.0.0"

func New(cfg config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, cfg, db, rdb)
	return g
}

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client) {
	// The detector UI may be served from anywhere (static hosting, edge).
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.MaxMultipartMemory = maxUploadBytes

	predictH := NewPredict(cfg, db, rdb)
	statusH := NewStatus(cfg)
	metricsH := NewMetrics(cfg)
	analyticsH := NewAnalytics(db)
	adminH := NewAdmin(db)

	limiter := NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	r.GET("/health", statusH.Health)

	api := r.Group("/api")
	{
		api.GET("/status", statusH.Status)
		api.GET("/metrics", metricsH.Metrics)
		api.GET("/analytics", analyticsH.Summary)
		api.GET("/gemini-result/:id", predictH.ContextualResult)

		limited := api.Group("")
		limited.Use(RateLimitMiddleware(limiter))
		limited.POST("/predict", predictH.Predict)
		limited.POST("/predict/file", predictH.PredictFile)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.JWT([]byte(cfg.JWTSecret)))
	{
		admin.DELETE("/history", adminH.PurgeHistory)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found.", "code": "NOT_FOUND"})
	})
}
