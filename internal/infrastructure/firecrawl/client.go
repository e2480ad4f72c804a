// Package firecrawl implements the extraction boundary: a single call
// that turns a news page into structured articles or raw markdown.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"TechPulse/internal/config"
	"TechPulse/internal/domain"
	"TechPulse/internal/ports"
)

const extractPrompt = "Extract up to 5 news article headlines from this page. " +
	"For each, return the headline text, the company it is about (if any), " +
	"and a category: AI, Funding, Product, Regulation, or Other."

// Client talks to the FireCrawl scrape API.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

var _ ports.Extractor = (*Client)(nil)

// NewClient builds a client from configuration.
func NewClient(cfg config.FireCrawlConfig) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type scrapeRequest struct {
	URL     string         `json:"url"`
	Formats []string       `json:"formats"`
	Extract *extractConfig `json:"extract,omitempty"`
}

type extractConfig struct {
	Prompt string          `json:"prompt"`
	Schema json.RawMessage `json:"schema,omitempty"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		Markdown string `json:"markdown"`
		Extract  struct {
			Articles []domain.Article `json:"articles"`
		} `json:"extract"`
	} `json:"data"`
}

// Extract scrapes the target URL, preferring structured articles and
// falling back to the page markdown when the extraction schema came
// back empty. Transport and auth failures surface as errors; the caller
// decides what to substitute.
func (c *Client) Extract(ctx context.Context, targetURL string) (ports.ExtractResult, error) {
	if c == nil {
		return ports.ExtractResult{}, fmt.Errorf("firecrawl client is nil")
	}
	if c.apiKey == "" || c.endpoint == "" {
		return ports.ExtractResult{}, fmt.Errorf("firecrawl client misconfigured")
	}

	body, err := json.Marshal(scrapeRequest{
		URL:     targetURL,
		Formats: []string{"markdown", "extract"},
		Extract: &extractConfig{Prompt: extractPrompt},
	})
	if err != nil {
		return ports.ExtractResult{}, fmt.Errorf("marshal scrape payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return ports.ExtractResult{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.ExtractResult{}, fmt.Errorf("scrape request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return ports.ExtractResult{}, fmt.Errorf("firecrawl error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ports.ExtractResult{}, fmt.Errorf("decode response: %w", err)
	}
	if !parsed.Success {
		return ports.ExtractResult{}, fmt.Errorf("firecrawl rejected scrape: %s", parsed.Error)
	}

	return ports.ExtractResult{
		Articles: parsed.Data.Extract.Articles,
		Markdown: parsed.Data.Markdown,
	}, nil
}
