package parser

import (
	"context"
	"fmt"
	"log/slog"

	"TechPulse/internal/config"
	"TechPulse/internal/domain"
	"TechPulse/internal/ports"
	"TechPulse/internal/scanner"
)

// StrategySource implements ArticleSource via a registered scanner
// strategy resolved from site configuration.
type StrategySource struct {
	registry *scanner.Registry
	site     config.SiteConfig
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*StrategySource)(nil)

// NewStrategySource wires the scanner registry with the configured site.
func NewStrategySource(reg *scanner.Registry, site config.SiteConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		site:     site,
		logger:   log,
	}
}

// FetchLatest resolves the configured scanner and executes it against
// the site URL.
func (s *StrategySource) FetchLatest(ctx context.Context) ([]domain.Article, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	s.debug("fetch latest", "site", s.site.Name, "scanner", s.site.Scanner)

	strategy, err := s.registry.Resolve(s.site.Scanner)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", s.site.Name, err)
	}

	results, err := strategy.Scan(ctx, scanner.Request{
		SiteName: s.site.Name,
		URL:      s.site.URL,
		Options:  s.site.Options,
	})
	if err != nil {
		return nil, fmt.Errorf("scan site %s: %w", s.site.Name, err)
	}

	s.debug("site produced articles", "site", s.site.Name, "count", len(results))
	return results, nil
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
