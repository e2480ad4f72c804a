package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"TechPulse/internal/domain"
	"TechPulse/internal/ports"
	"TechPulse/internal/usecase"
)

// Handler handles HTTP requests for the news and dashboard API.
type Handler struct {
	pipeline  *usecase.Pipeline
	dashboard *usecase.Dashboard
	store     ports.ArticleStore
	logger    *slog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(pipeline *usecase.Pipeline, dashboard *usecase.Dashboard, store ports.ArticleStore, logger *slog.Logger) *Handler {
	return &Handler{
		pipeline:  pipeline,
		dashboard: dashboard,
		store:     store,
		logger:    logger,
	}
}

// GetNews handles GET /api/v1/news. Extraction failures are absorbed by
// the pipeline's fallback substitution, so this endpoint never returns
// an error status for the fetch flow.
func (h *Handler) GetNews(c *gin.Context) {
	result := h.pipeline.FetchLatest(c.Request.Context())

	h.logger.Info("news fetched", "count", len(result.Articles), "source", result.Source)

	c.JSON(http.StatusOK, result)
}

// GetDashboard handles GET /api/v1/dashboard. Storage failures surface
// as a visible error state with a manual retry affordance client-side.
func (h *Handler) GetDashboard(c *gin.Context) {
	overview, err := h.dashboard.Overview(c.Request.Context())
	if err != nil {
		h.logger.Error("dashboard aggregation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load articles", "retryable": true})
		return
	}

	h.logger.Debug("dashboard computed", "total", overview.Total)

	c.JSON(http.StatusOK, overview)
}

// GetArticles handles GET /api/v1/articles: the raw persisted rows,
// recency descending.
func (h *Handler) GetArticles(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage is not configured", "retryable": false})
		return
	}

	articles, err := h.store.ListRecent(c.Request.Context())
	if err != nil {
		h.logger.Error("article listing failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load articles", "retryable": true})
		return
	}

	if articles == nil {
		articles = []domain.StoredArticle{}
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "total": len(articles)})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "techpulse",
	})
}

// ReadyCheck handles GET /ready.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
