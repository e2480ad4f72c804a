package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"TechPulse/internal/classify"
	"TechPulse/internal/domain"
	"TechPulse/internal/ports"
)

// Fetch result sources.
const (
	SourceLive     = "live"
	SourceScrape   = "scrape"
	SourceFallback = "fallback"
)

// FetchResult carries classified articles plus where they came from.
type FetchResult struct {
	Articles []domain.Article `json:"articles"`
	Source   string           `json:"source"`
}

// PipelineDeps wires all driven adapters into the fetch pipeline.
type PipelineDeps struct {
	Extractor ports.Extractor
	Source    ports.ArticleSource
	Store     ports.ArticleStore
	Notifier  ports.Notifier
	Headlines func(markdown string) []domain.Article
	SiteURL   string
	Persist   bool
	Logger    *slog.Logger
}

// Pipeline implements the fetch-and-classify workflow.
type Pipeline struct {
	extractor ports.Extractor
	source    ports.ArticleSource
	store     ports.ArticleStore
	notifier  ports.Notifier
	headlines func(markdown string) []domain.Article
	siteURL   string
	persist   bool
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		extractor: deps.Extractor,
		source:    deps.Source,
		store:     deps.Store,
		notifier:  deps.Notifier,
		headlines: deps.Headlines,
		siteURL:   deps.SiteURL,
		persist:   deps.Persist,
		logger:    deps.Logger,
	}
}

// FetchLatest runs the extraction call and classifies whatever comes
// back. Structured results are normalized; raw markdown goes through
// the headline fallback parser; any failure substitutes fixed sample
// data. The method never returns an error: every path yields a
// renderable result.
func (p *Pipeline) FetchLatest(ctx context.Context) FetchResult {
	if p.extractor != nil {
		result, err := p.extractor.Extract(ctx, p.siteURL)
		switch {
		case err != nil:
			p.warn("extraction call failed", "error", err)
		case len(result.Articles) > 0:
			return FetchResult{Articles: normalizeArticles(result.Articles), Source: SourceLive}
		case result.Markdown != "" && p.headlines != nil:
			if articles := p.headlines(result.Markdown); len(articles) > 0 {
				return FetchResult{Articles: articles, Source: SourceLive}
			}
			p.warn("markdown fallback produced no headlines")
		default:
			p.warn("extraction returned an empty payload")
		}
	}

	if p.source != nil {
		articles, err := p.source.FetchLatest(ctx)
		if err != nil {
			p.warn("direct scrape failed", "error", err)
		} else if len(articles) > 0 {
			return FetchResult{Articles: articles, Source: SourceScrape}
		}
	}

	return FetchResult{Articles: FallbackArticles(), Source: SourceFallback}
}

// Refresh runs a scheduled fetch, persists the classified articles
// (unless the run fell back to sample data), and publishes a digest.
func (p *Pipeline) Refresh(ctx context.Context, now time.Time) error {
	result := p.FetchLatest(ctx)

	p.info("refresh fetched articles", "count", len(result.Articles), "source", result.Source)

	if p.persist && p.store != nil && result.Source != SourceFallback {
		for _, article := range result.Articles {
			stored := domain.StoredArticle{
				Title:         article.Headline,
				URL:           p.siteURL,
				Topic:         string(article.Category),
				PublishedDate: now.UTC(),
			}
			if err := p.store.SaveArticle(ctx, stored); err != nil {
				return fmt.Errorf("persist article %q: %w", article.Headline, err)
			}
		}
	}

	if p.notifier == nil || len(result.Articles) == 0 {
		return nil
	}

	if err := p.notifier.PublishDigest(ctx, result.Articles, result.Source); err != nil {
		return fmt.Errorf("publish digest: %w", err)
	}

	return nil
}

// normalizeArticles applies the defaulting rules for payloads from the
// extraction API: unknown categories become Other, companies outside
// the allow-list become absent.
func normalizeArticles(articles []domain.Article) []domain.Article {
	normalized := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		if article.Headline == "" {
			continue
		}
		if !article.Category.Valid() {
			article.Category = domain.CategoryOther
		}
		if article.Company != "" {
			company, known := classify.KnownCompany(article.Company)
			if !known {
				company = ""
			}
			article.Company = company
		}
		normalized = append(normalized, article)
	}
	return normalized
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
