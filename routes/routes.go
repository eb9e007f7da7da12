package routes

import (
	"net/http"
	"strings"
	"time"

	"sociai/config"
	"sociai/handlers"
	"sociai/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires the social API under /api/social and the event stream
// under /ws. events may be nil when live updates are disabled.
func SetupRouter(cfg *config.Config, h *handlers.Handler, events http.Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "ok",
			"message": "SociAI API is running",
			"time":    time.Now().Unix(),
		})
	})

	if events != nil {
		router.GET("/ws", gin.WrapH(events))
	}

	var limiter *middleware.IPRateLimiter
	if cfg.RateLimit > 0 {
		limiter = middleware.NewIPRateLimiter(cfg.RateLimit, time.Minute)
	}

	api := router.Group("/api/social")
	api.Use(middleware.RateLimit(limiter))

	// Feed
	api.GET("/feed", h.GetFeed)
	api.POST("/feed", h.CreatePost)
	api.POST("/posts", h.CreatePost)

	// Engagement
	api.POST("/engagement", h.RecordEngagement)

	// Communities
	api.GET("/communities", h.GetCommunities)
	api.POST("/communities", h.CreateCommunity)
	api.POST("/communities/:id/join", h.JoinCommunity)
	api.POST("/communities/:id/leave", h.LeaveCommunity)

	// Events
	api.GET("/events", h.GetEvents)
	api.POST("/events/:id/attend", h.AttendEvent)

	// Content
	api.GET("/content/ideas", h.GetContentIdeas)
	api.POST("/content/generate", h.GenerateContent)
	api.GET("/content/templates", h.GetContentTemplates)
	api.GET("/content/analytics", h.GetContentAnalytics)

	// Analytics
	api.GET("/analytics", h.GetAnalytics)
	api.GET("/analytics/:type", h.GetAnalytics)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Endpoint not found",
				"path":    c.Request.URL.Path,
			})
		}
	})

	return router
}
