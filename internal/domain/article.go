package domain

import "time"

// Category is the closed set of labels a headline can be filed under.
type Category string

const (
	CategoryAI         Category = "AI"
	CategoryFunding    Category = "Funding"
	CategoryProduct    Category = "Product"
	CategoryRegulation Category = "Regulation"
	CategoryOther      Category = "Other"
)

// Valid reports whether the category belongs to the closed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryAI, CategoryFunding, CategoryProduct, CategoryRegulation, CategoryOther:
		return true
	}
	return false
}

// Article is a transient record produced by extraction or fallback data.
// Company is empty when no known company was found in the headline.
type Article struct {
	Headline string   `json:"headline"`
	Company  string   `json:"company,omitempty"`
	Category Category `json:"category"`
}

// StoredArticle is the durable form of an article after classification
// and persistence. Rows are read-only on the dashboard path.
type StoredArticle struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Topic         string    `json:"topic"`
	PublishedDate time.Time `json:"published_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// DefaultTopicColor is the badge color for topics outside the known set.
const DefaultTopicColor = "#6b7280"

var topicColors = map[string]string{
	string(CategoryAI):         "#8b5cf6",
	string(CategoryFunding):    "#10b981",
	string(CategoryProduct):    "#3b82f6",
	string(CategoryRegulation): "#f59e0b",
	string(CategoryOther):      DefaultTopicColor,
}

// TopicColor resolves a topic to its badge color, falling back to the
// default bucket for unknown topics.
func TopicColor(topic string) string {
	if color, ok := topicColors[topic]; ok {
		return color
	}
	return DefaultTopicColor
}
