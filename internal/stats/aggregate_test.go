package stats

import (
	"testing"
	"time"

	"TechPulse/internal/domain"
)

func day(offset int) time.Time {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	overview := Aggregate(nil)
	if overview.Total != 0 {
		t.Fatalf("expected zero total, got %d", overview.Total)
	}
	if len(overview.Topics) != 0 {
		t.Fatalf("expected empty distribution, got %v", overview.Topics)
	}
	if len(overview.Timeline) != 0 {
		t.Fatalf("expected empty timeline, got %v", overview.Timeline)
	}
	if len(overview.WordFrequency) != 0 {
		t.Fatalf("expected empty word frequency, got %v", overview.WordFrequency)
	}
	if len(overview.Recent) != 0 {
		t.Fatalf("expected empty recent feed, got %v", overview.Recent)
	}
}

func TestTopicDistributionPercentages(t *testing.T) {
	t.Parallel()

	var articles []domain.StoredArticle
	add := func(topic string, n int) {
		for i := 0; i < n; i++ {
			articles = append(articles, domain.StoredArticle{
				Topic:         topic,
				PublishedDate: day(0),
			})
		}
	}
	add("AI", 4)
	add("Product", 3)
	add("Funding", 3)

	overview := Aggregate(articles)
	want := map[string]int{"AI": 40, "Product": 30, "Funding": 30}

	if len(overview.Topics) != len(want) {
		t.Fatalf("expected %d topics, got %d", len(want), len(overview.Topics))
	}
	sum := 0
	for _, tc := range overview.Topics {
		if want[tc.Topic] != tc.Percentage {
			t.Fatalf("topic %s: percentage %d, want %d", tc.Topic, tc.Percentage, want[tc.Topic])
		}
		if tc.Color != domain.TopicColor(tc.Topic) {
			t.Fatalf("topic %s: unexpected color %s", tc.Topic, tc.Color)
		}
		sum += tc.Percentage
	}
	if sum != 100 {
		t.Fatalf("expected percentages to sum to 100 here, got %d", sum)
	}
	if overview.Topics[0].Topic != "AI" {
		t.Fatalf("expected AI first by count, got %s", overview.Topics[0].Topic)
	}
}

func TestTopicDistributionUnknownTopicColor(t *testing.T) {
	t.Parallel()

	overview := Aggregate([]domain.StoredArticle{
		{Topic: "Quantum", PublishedDate: day(0)},
	})
	if len(overview.Topics) != 1 {
		t.Fatalf("expected one topic, got %d", len(overview.Topics))
	}
	if overview.Topics[0].Color != domain.DefaultTopicColor {
		t.Fatalf("expected default color for unknown topic, got %s", overview.Topics[0].Color)
	}
}

func TestTimelineKeepsLastSevenBuckets(t *testing.T) {
	t.Parallel()

	var articles []domain.StoredArticle
	for offset := 0; offset < 10; offset++ {
		articles = append(articles, domain.StoredArticle{
			Topic:         "AI",
			PublishedDate: day(offset),
		})
	}
	// Second article on the most recent day, appended out of order.
	articles = append(articles, domain.StoredArticle{
		Topic:         "AI",
		PublishedDate: day(9).Add(5 * time.Hour),
	})

	overview := Aggregate(articles)
	if len(overview.Timeline) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(overview.Timeline))
	}
	if overview.Timeline[0].Date != "2025-03-04" {
		t.Fatalf("unexpected first bucket: %s", overview.Timeline[0].Date)
	}
	last := overview.Timeline[6]
	if last.Date != "2025-03-10" || last.Count != 2 {
		t.Fatalf("unexpected last bucket: %+v", last)
	}
	for i := 1; i < len(overview.Timeline); i++ {
		if overview.Timeline[i-1].Date >= overview.Timeline[i].Date {
			t.Fatalf("timeline not ascending at %d", i)
		}
	}
}

func TestTimelineBucketsByUTCDate(t *testing.T) {
	t.Parallel()

	est := time.FixedZone("EST", -5*3600)
	overview := Aggregate([]domain.StoredArticle{
		{Topic: "AI", PublishedDate: time.Date(2025, time.March, 1, 23, 0, 0, 0, est)},
		{Topic: "AI", PublishedDate: time.Date(2025, time.March, 2, 6, 0, 0, 0, time.UTC)},
	})

	// 23:00 EST is 04:00 UTC the next day; both land in the same bucket.
	if len(overview.Timeline) != 1 {
		t.Fatalf("expected one bucket, got %v", overview.Timeline)
	}
	if overview.Timeline[0].Date != "2025-03-02" || overview.Timeline[0].Count != 2 {
		t.Fatalf("unexpected bucket: %+v", overview.Timeline[0])
	}
}

func TestWordFrequencyTopWord(t *testing.T) {
	t.Parallel()

	overview := Aggregate([]domain.StoredArticle{
		{Title: "AI raises funding for AI", PublishedDate: day(0)},
		{Title: "AI product launch", PublishedDate: day(0)},
	})

	if len(overview.WordFrequency) == 0 {
		t.Fatal("expected word frequency entries")
	}
	top := overview.WordFrequency[0]
	if top.Word != "ai" || top.Count != 3 {
		t.Fatalf("expected top word ai x3, got %+v", top)
	}
	// "for" is a stopword and must not appear.
	for _, wc := range overview.WordFrequency {
		if wc.Word == "for" {
			t.Fatalf("stopword leaked into frequency: %+v", wc)
		}
	}
}

func TestWordFrequencyTopFiveStableTies(t *testing.T) {
	t.Parallel()

	overview := Aggregate([]domain.StoredArticle{
		{Title: "alpha beta gamma delta epsilon zeta", PublishedDate: day(0)},
		{Title: "alpha alpha beta", PublishedDate: day(0)},
	})

	if len(overview.WordFrequency) != 5 {
		t.Fatalf("expected top 5, got %d", len(overview.WordFrequency))
	}
	if overview.WordFrequency[0].Word != "alpha" || overview.WordFrequency[0].Count != 3 {
		t.Fatalf("unexpected leader: %+v", overview.WordFrequency[0])
	}
	if overview.WordFrequency[1].Word != "beta" || overview.WordFrequency[1].Count != 2 {
		t.Fatalf("unexpected runner-up: %+v", overview.WordFrequency[1])
	}
	// Remaining singles keep first-encountered order under the stable sort.
	wantTail := []string{"gamma", "delta", "epsilon"}
	for i, want := range wantTail {
		got := overview.WordFrequency[2+i]
		if got.Word != want || got.Count != 1 {
			t.Fatalf("tie order broken at %d: got %+v, want %s", i, got, want)
		}
	}
}

func TestRecentFeedFirstFiveAsGiven(t *testing.T) {
	t.Parallel()

	var articles []domain.StoredArticle
	for i := 0; i < 8; i++ {
		articles = append(articles, domain.StoredArticle{
			ID:            int64(i + 1),
			Title:         "article",
			Topic:         "AI",
			PublishedDate: day(i),
		})
	}

	overview := Aggregate(articles)
	if len(overview.Recent) != 5 {
		t.Fatalf("expected 5 recent articles, got %d", len(overview.Recent))
	}
	for i, a := range overview.Recent {
		if a.ID != int64(i+1) {
			t.Fatalf("recent feed reordered: position %d has id %d", i, a.ID)
		}
	}
}
