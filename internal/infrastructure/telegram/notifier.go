// Package telegram delivers refresh digests through the Telegram bot
// API, rendering articles as a Markdown message.
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"TechPulse/internal/domain"
	"TechPulse/internal/ports"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	sendTimeout    = 5 * time.Second
)

// Notifier posts refresh digests to a single Telegram chat.
type Notifier struct {
	apiBase  string
	botToken string
	chatID   string
	client   *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers bot token and chat identifier.
func NewNotifier(botToken, chatID string) *Notifier {
	return &Notifier{
		apiBase:  defaultAPIBase,
		botToken: botToken,
		chatID:   chatID,
		client:   &http.Client{Timeout: sendTimeout},
	}
}

// PublishDigest renders the articles as a Markdown digest and posts it
// to the configured chat. An empty article set is a no-op.
func (n *Notifier) PublishDigest(ctx context.Context, articles []domain.Article, source string) error {
	if n.botToken == "" || n.chatID == "" || n.client == nil {
		return fmt.Errorf("telegram notifier misconfigured")
	}
	if len(articles) == 0 {
		return nil
	}

	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", formatDigest(articles, source))
	form.Set("parse_mode", "Markdown")

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram error: %s", resp.Status)
	}

	return nil
}

// formatDigest renders one line per article with its category badge and
// company, when present.
func formatDigest(articles []domain.Article, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Tech news refresh* (%s)\n", source)
	for _, article := range articles {
		fmt.Fprintf(&b, "- [%s] %s", article.Category, article.Headline)
		if article.Company != "" {
			fmt.Fprintf(&b, " (%s)", article.Company)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
