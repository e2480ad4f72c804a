// Package classify assigns closed-set categories to headlines using
// ordered keyword-containment rules.
package classify

import (
	"strings"

	"TechPulse/internal/domain"
)

// keywordGroup binds a category to its trigger terms. Groups are tested
// in slice order and the first containment match wins, so a headline
// hitting several groups lands in the earliest one.
type keywordGroup struct {
	category domain.Category
	terms    []string
}

var keywordGroups = []keywordGroup{
	{domain.CategoryAI, []string{"ai", "artificial intelligence", "machine learning", "chatgpt", "openai"}},
	{domain.CategoryFunding, []string{"funding", "investment", "raises", "series", "venture"}},
	{domain.CategoryProduct, []string{"product", "launch", "release", "update", "feature"}},
	{domain.CategoryRegulation, []string{"regulation", "policy", "government", "legal", "lawsuit"}},
}

// knownCompanies is the fixed allow-list scanned in order; no fuzzy or
// word-boundary matching. "X" sits last so longer names win first.
var knownCompanies = []string{
	"Microsoft", "Apple", "Google", "Amazon", "Meta", "Tesla", "OpenAI",
	"Anthropic", "SpaceX", "Uber", "Airbnb", "Netflix", "X", "TikTok",
	"ByteDance",
}

// Categorize returns the first matching category for the headline, or
// Other when no keyword group matches. Matching is case-folded
// substring containment, reproduced at the substring level: a term like
// "ai" also matches inside longer words.
func Categorize(headline string) domain.Category {
	lowered := strings.ToLower(headline)
	for _, group := range keywordGroups {
		for _, term := range group.terms {
			if strings.Contains(lowered, term) {
				return group.category
			}
		}
	}
	return domain.CategoryOther
}

// ExtractCompany returns the first allow-listed company whose lowercase
// form appears in the headline, in list order. The second return is
// false when no company matches.
func ExtractCompany(headline string) (string, bool) {
	lowered := strings.ToLower(headline)
	for _, company := range knownCompanies {
		if strings.Contains(lowered, strings.ToLower(company)) {
			return company, true
		}
	}
	return "", false
}

// KnownCompany canonicalizes a company name against the allow-list.
// The second return is false for names outside the list.
func KnownCompany(name string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for _, company := range knownCompanies {
		if lowered == strings.ToLower(company) {
			return company, true
		}
	}
	return "", false
}

// Classify builds an Article from a bare headline by running both the
// category and company rules.
func Classify(headline string) domain.Article {
	company, _ := ExtractCompany(headline)
	return domain.Article{
		Headline: headline,
		Company:  company,
		Category: Categorize(headline),
	}
}
