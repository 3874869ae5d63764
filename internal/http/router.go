package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type HealthFunc func(ctx context.Context) error

func NewRouter(handler *Handler, clientMiddleware gin.HandlerFunc, health HealthFunc, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		if health != nil {
			if err := health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.POST("/clients", handler.openClient)

	protected := api.Group("")
	protected.Use(clientMiddleware)
	{
		protected.GET("/screen", handler.getScreen)
		protected.POST("/navigate", handler.navigate)
		protected.POST("/back", handler.back)
		protected.GET("/routes", handler.listRoutes)
		protected.GET("/history", handler.listHistory)

		protected.GET("/session", handler.getSession)
		protected.POST("/session/login", handler.login)
		protected.POST("/session/logout", handler.logout)

		protected.GET("/live/:channel", handler.live)
	}

	return router
}
