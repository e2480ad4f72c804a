// Package stats computes dashboard aggregates over persisted articles.
package stats

import (
	"math"
	"sort"
	"strings"

	"TechPulse/internal/domain"
)

const (
	timelineBuckets = 7
	topWords        = 5
	recentFeedSize  = 5
	minWordLength   = 2
	dateKeyLayout   = "2006-01-02"
)

// TopicCount is one bar of the topic distribution. Percentages are
// rounded independently per topic and are not corrected to sum to 100.
type TopicCount struct {
	Topic      string `json:"topic"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

// TimePoint is one calendar-day bucket of the publishing timeline.
// Date is a UTC ISO date key, not a display string.
type TimePoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// WordCount is one entry of the title word-frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Overview is the full dashboard aggregate, recomputed on every read.
type Overview struct {
	Total         int                    `json:"total"`
	Topics        []TopicCount           `json:"topics"`
	Timeline      []TimePoint            `json:"timeline"`
	WordFrequency []WordCount            `json:"word_frequency"`
	Recent        []domain.StoredArticle `json:"recent"`
}

// stopwords are dropped from title tokenization. Ordered list so the
// set stays reviewable; lookup goes through a map built at init.
// Two-letter function words are listed explicitly because short domain
// tokens like "ai" must survive the filter.
var stopwords = []string{
	"of", "to", "in", "at", "on", "by", "it", "is", "as", "an", "be",
	"we", "he", "us", "up", "so", "no", "do", "if", "or", "my",
	"the", "and", "for", "are", "but", "not", "you", "all", "can",
	"had", "has", "was", "one", "our", "out", "new", "now",
	"how", "its", "who", "did", "get", "with", "this", "that", "from",
	"they", "will", "have", "been", "said", "says", "after", "over",
	"into", "more", "than", "amid", "about", "their", "what", "when",
	"your", "just", "also",
}

var stopwordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return set
}()

// Aggregate derives the dashboard overview from articles. The caller
// supplies the slice already ordered by recency descending; Aggregate
// never mutates its input. An empty input yields empty sections.
func Aggregate(articles []domain.StoredArticle) Overview {
	return Overview{
		Total:         len(articles),
		Topics:        topicDistribution(articles),
		Timeline:      timeline(articles),
		WordFrequency: wordFrequency(articles),
		Recent:        recentFeed(articles),
	}
}

func topicDistribution(articles []domain.StoredArticle) []TopicCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, a := range articles {
		if _, seen := counts[a.Topic]; !seen {
			order = append(order, a.Topic)
		}
		counts[a.Topic]++
	}

	total := len(articles)
	distribution := make([]TopicCount, 0, len(order))
	for _, topic := range order {
		count := counts[topic]
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(100 * float64(count) / float64(total)))
		}
		distribution = append(distribution, TopicCount{
			Topic:      topic,
			Count:      count,
			Percentage: percentage,
			Color:      domain.TopicColor(topic),
		})
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})
	return distribution
}

func timeline(articles []domain.StoredArticle) []TimePoint {
	counts := make(map[string]int)
	for _, a := range articles {
		key := a.PublishedDate.UTC().Format(dateKeyLayout)
		counts[key]++
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	// ISO date keys sort chronologically as plain strings.
	sort.Strings(keys)

	if len(keys) > timelineBuckets {
		keys = keys[len(keys)-timelineBuckets:]
	}

	points := make([]TimePoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, TimePoint{Date: key, Count: counts[key]})
	}
	return points
}

func wordFrequency(articles []domain.StoredArticle) []WordCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, a := range articles {
		for _, token := range tokenize(a.Title) {
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	ranked := make([]WordCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, WordCount{Word: word, Count: counts[word]})
	}

	// Stable sort keeps first-encountered order on ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topWords {
		ranked = ranked[:topWords]
	}
	return ranked
}

// tokenize splits a title on runs of non-word characters, case-folds,
// and drops single-character tokens and stopwords.
func tokenize(title string) []string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) < minWordLength {
			continue
		}
		if _, stop := stopwordSet[field]; stop {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func recentFeed(articles []domain.StoredArticle) []domain.StoredArticle {
	if len(articles) > recentFeedSize {
		articles = articles[:recentFeedSize]
	}
	recent := make([]domain.StoredArticle, len(articles))
	copy(recent, articles)
	return recent
}
