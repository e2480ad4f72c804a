package parser

import (
	"bufio"
	"regexp"
	"strings"

	"TechPulse/internal/classify"
	"TechPulse/internal/domain"
)

// maxHeadlines caps how many articles the fallback parser collects.
const maxHeadlines = 5

// headingLinkExpr matches a level 1-4 markdown heading whose text starts
// with a bracketed link label; the label is the headline.
var headingLinkExpr = regexp.MustCompile(`^#{1,4}\s+\[([^\]]+)\]`)

// ExtractHeadlines scans markdown line by line and classifies every
// headed-link label it finds, stopping once maxHeadlines articles have
// been collected. Non-matching lines are skipped; empty input yields an
// empty slice. Output order follows input line order.
func ExtractHeadlines(markdown string) []domain.Article {
	articles := make([]domain.Article, 0, maxHeadlines)

	lines := bufio.NewScanner(strings.NewReader(markdown))
	for lines.Scan() {
		match := headingLinkExpr.FindStringSubmatch(lines.Text())
		if match == nil {
			continue
		}

		articles = append(articles, classify.Classify(match[1]))
		if len(articles) == maxHeadlines {
			break
		}
	}

	return articles
}
