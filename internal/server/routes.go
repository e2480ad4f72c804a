package server

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/news", handler.GetNews)           // GET /api/v1/news
		v1.GET("/dashboard", handler.GetDashboard) // GET /api/v1/dashboard
		v1.GET("/articles", handler.GetArticles)   // GET /api/v1/articles
	}
}
