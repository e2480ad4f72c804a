package ports

import (
	"context"
	"time"

	"TechPulse/internal/domain"
)

// ExtractResult is what the extraction API yields for one page: either
// structured articles, raw markdown, or both.
type ExtractResult struct {
	Articles []domain.Article
	Markdown string
}

// Extractor converts a web page into structured or semi-structured data
// through the external extraction API.
type Extractor interface {
	Extract(ctx context.Context, targetURL string) (ExtractResult, error)
}

// ArticleSource pulls classified articles straight from a site scrape.
type ArticleSource interface {
	FetchLatest(ctx context.Context) ([]domain.Article, error)
}

// ArticleStore reads and writes persisted articles. ListRecent returns
// rows ordered by insertion time descending.
type ArticleStore interface {
	ListRecent(ctx context.Context) ([]domain.StoredArticle, error)
	SaveArticle(ctx context.Context, article domain.StoredArticle) error
}

// Notifier delivers refresh digests to an outbound channel. The
// notifier owns the channel-specific formatting of the articles.
type Notifier interface {
	PublishDigest(ctx context.Context, articles []domain.Article, source string) error
}

// Scheduler controls when the refresh job executes.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
