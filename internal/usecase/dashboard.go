package usecase

import (
	"context"
	"fmt"

	"TechPulse/internal/ports"
	"TechPulse/internal/stats"
)

// Dashboard computes aggregate statistics over persisted articles.
type Dashboard struct {
	store ports.ArticleStore
}

// NewDashboard wires the article store.
func NewDashboard(store ports.ArticleStore) *Dashboard {
	return &Dashboard{store: store}
}

// Overview loads all persisted articles (recency descending) and
// recomputes the aggregate view from scratch. Storage failures
// propagate so the caller can surface a retryable error state.
func (d *Dashboard) Overview(ctx context.Context) (stats.Overview, error) {
	if d.store == nil {
		return stats.Overview{}, fmt.Errorf("storage is not configured")
	}

	articles, err := d.store.ListRecent(ctx)
	if err != nil {
		return stats.Overview{}, fmt.Errorf("load articles: %w", err)
	}

	return stats.Aggregate(articles), nil
}
