package classify

import (
	"testing"

	"TechPulse/internal/domain"
)

func TestCategorizeSingleGroup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		headline string
		want     domain.Category
	}{
		{"ChatGPT passes the bar exam", domain.CategoryAI},
		{"Machine learning models shrink again", domain.CategoryAI},
		{"Startup secures venture round", domain.CategoryFunding},
		{"New investment flows into robotics", domain.CategoryFunding},
		{"Big launch event next week", domain.CategoryProduct},
		{"Spring update ships to everyone", domain.CategoryProduct},
		{"Government weighs new rules", domain.CategoryRegulation},
		{"Court rules in antitrust lawsuit", domain.CategoryRegulation},
		{"Quiet week in tech", domain.CategoryOther},
		{"", domain.CategoryOther},
	}

	for _, tc := range cases {
		if got := Categorize(tc.headline); got != tc.want {
			t.Fatalf("Categorize(%q) = %s, want %s", tc.headline, got, tc.want)
		}
	}
}

func TestCategorizePriorityOrder(t *testing.T) {
	t.Parallel()

	// AI precedes Funding even when both groups match.
	if got := Categorize("OpenAI secures record funding"); got != domain.CategoryAI {
		t.Fatalf("expected AI to win over Funding, got %s", got)
	}

	// Funding precedes Product.
	if got := Categorize("Venture-backed product debuts"); got != domain.CategoryFunding {
		t.Fatalf("expected Funding to win over Product, got %s", got)
	}

	// Product precedes Regulation.
	if got := Categorize("Feature rollout delayed by legal review"); got != domain.CategoryProduct {
		t.Fatalf("expected Product to win over Regulation, got %s", got)
	}
}

func TestCategorizeSubstringContainment(t *testing.T) {
	t.Parallel()

	// "raises" contains "ai", so the AI group matches before the Funding
	// group is ever consulted. Containment-level matching is the contract.
	if got := Categorize("Startup raises $50M"); got != domain.CategoryAI {
		t.Fatalf("expected containment match on AI, got %s", got)
	}
}

func TestExtractCompany(t *testing.T) {
	t.Parallel()

	cases := []struct {
		headline string
		want     string
		found    bool
	}{
		{"Apple sues Google", "Apple", true},
		{"google previews new phones", "Google", true},
		{"TikTok ban moves forward", "TikTok", true},
		{"Anthropic publishes research", "Anthropic", true},
		{"Quiet week in tech", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, found := ExtractCompany(tc.headline)
		if got != tc.want || found != tc.found {
			t.Fatalf("ExtractCompany(%q) = (%q, %v), want (%q, %v)",
				tc.headline, got, found, tc.want, tc.found)
		}
	}
}

func TestExtractCompanyListOrder(t *testing.T) {
	t.Parallel()

	// Microsoft precedes Meta in the allow-list.
	got, found := ExtractCompany("Meta and Microsoft announce a partnership")
	if !found || got != "Microsoft" {
		t.Fatalf("expected first-by-list-order Microsoft, got %q", got)
	}

	// Apple precedes Google regardless of position in the headline.
	got, found = ExtractCompany("Google countersues Apple")
	if !found || got != "Apple" {
		t.Fatalf("expected first-by-list-order Apple, got %q", got)
	}
}

func TestExtractCompanyShortToken(t *testing.T) {
	t.Parallel()

	// Plain substring containment: "x" inside an unrelated word still
	// matches the short "X" entry when nothing earlier in the list does.
	got, found := ExtractCompany("Exchange volumes climb")
	if !found || got != "X" {
		t.Fatalf("expected substring match on X, got (%q, %v)", got, found)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	headline := "OpenAI launches new product line"
	first := Classify(headline)
	second := Classify(headline)
	if first != second {
		t.Fatalf("classification not deterministic: %+v vs %+v", first, second)
	}
	if first.Category != domain.CategoryAI || first.Company != "OpenAI" {
		t.Fatalf("unexpected classification: %+v", first)
	}
}
