package usecase

import "TechPulse/internal/domain"

// fallbackArticles is the canned sample set substituted when neither
// extraction nor scraping yields anything. Fields are preset, not run
// through the classifier.
var fallbackArticles = []domain.Article{
	{Headline: "OpenAI releases new flagship model", Company: "OpenAI", Category: domain.CategoryAI},
	{Headline: "Anthropic secures fresh venture funding", Company: "Anthropic", Category: domain.CategoryFunding},
	{Headline: "Apple launches redesigned smart home lineup", Company: "Apple", Category: domain.CategoryProduct},
	{Headline: "EU opens inquiry into app store policies", Category: domain.CategoryRegulation},
	{Headline: "Chip startups bet on cheaper inference", Category: domain.CategoryOther},
}

// FallbackArticles returns a copy of the fixed sample data so callers
// cannot mutate the canonical set.
func FallbackArticles() []domain.Article {
	articles := make([]domain.Article, len(fallbackArticles))
	copy(articles, fallbackArticles)
	return articles
}
