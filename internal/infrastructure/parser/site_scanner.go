package parser

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"TechPulse/internal/classify"
	"TechPulse/internal/domain"
	"TechPulse/internal/scanner"
)

const defaultHeadlineLimit = 5

// SiteScanner scrapes headline anchors straight off a news page. It is
// the no-API-key alternative to the extraction service and feeds the
// same classifier.
type SiteScanner struct {
	client    *http.Client
	selector  string
	headlines int
}

// NewSiteScanner wires an HTTP client; selector defaults to article
// heading links and the headline limit matches the fallback parser.
func NewSiteScanner(client *http.Client) *SiteScanner {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &SiteScanner{
		client:    client,
		selector:  "h1 a, h2 a, h3 a",
		headlines: defaultHeadlineLimit,
	}
}

// Name identifies the strategy inside the registry.
func (s *SiteScanner) Name() string {
	return "site"
}

// Scan fetches the page and classifies each headline anchor until the
// limit is reached. Anchor order on the page is preserved.
func (s *SiteScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Article, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("no url provided for site %s", req.SiteName)
	}

	doc, err := s.fetchDocument(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", req.SiteName, err)
	}

	articles := make([]domain.Article, 0, s.headlines)
	seen := map[string]struct{}{}

	doc.Find(s.selector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		headline := strings.TrimSpace(sel.Text())
		if headline == "" {
			return true
		}
		if _, ok := seen[headline]; ok {
			return true
		}
		seen[headline] = struct{}{}

		articles = append(articles, classify.Classify(headline))
		return len(articles) < s.headlines
	})

	return articles, nil
}

func (s *SiteScanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "TechPulse/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("site returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}
