// Copyright Venturely Inc., 2026. All rights reserved.

package narrative

import (
	"regexp"
	"strings"
	"time"

	"github.com/venturely/intel-engine/pkg/types"
)

// Clearly labeled placeholder values used when neither the model nor the
// heuristic patterns produce a field.
const (
	placeholderMarketSize = "Market size unavailable (no sizing figure found in research signal)"
	placeholderGrowthRate = "Growth rate unavailable (no growth figure found in research signal)"
)

var (
	placeholderTrends        = []string{"Trend data unavailable (placeholder)"}
	placeholderCompetitors   = []string{"Competitor data unavailable (placeholder)"}
	placeholderOpportunities = []string{"Opportunity analysis unavailable (placeholder)"}
	placeholderThreats       = []string{"Threat analysis unavailable (placeholder)"}
)

// currencyPattern matches figures like "$4.5 billion", "$120M", "USD 3 trillion".
var currencyPattern = regexp.MustCompile(`(?i)(?:\$|USD\s?)\s?\d+(?:[.,]\d+)?\s?(?:trillion|billion|million|[TBMK])\b`)

// percentPattern matches figures like "12%", "8.5 %", "23.4 percent".
var percentPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s?(?:%|percent)`)

// extractHeuristic scans the merged snippets of the three aggregated sets
// for currency and percentage figures and assembles a MarketAnalysis from
// whatever it finds, placeholders otherwise. The fallback path when the
// language-model capability is down.
func extractHeuristic(market, competitors, trends types.AggregatedResult) types.MarketAnalysis {
	text := joinSnippets(market, competitors, trends)

	analysis := types.MarketAnalysis{
		MarketSize:    placeholderMarketSize,
		GrowthRate:    placeholderGrowthRate,
		Trends:        placeholderTrends,
		Competitors:   placeholderCompetitors,
		Opportunities: placeholderOpportunities,
		Threats:       placeholderThreats,
		GeneratedAt:   time.Now().UTC(),
	}

	if m := currencyPattern.FindString(text); m != "" {
		analysis.MarketSize = "Research signal cites a market figure of " + strings.TrimSpace(m)
	}
	if m := percentPattern.FindString(text); m != "" {
		analysis.GrowthRate = "Research signal cites a growth figure of " + strings.TrimSpace(m)
	}

	// Trend titles are usable as-is when the trends set has real content.
	if titles := resultTitles(trends, 5); len(titles) > 0 {
		analysis.Trends = titles
	}
	if titles := resultTitles(competitors, 5); len(titles) > 0 {
		analysis.Competitors = titles
	}

	analysis.Citations = collectCitations(market, competitors, trends)
	return analysis
}

// joinSnippets concatenates every snippet across the given sets.
func joinSnippets(sets ...types.AggregatedResult) string {
	var b strings.Builder
	for _, set := range sets {
		for _, r := range set.Results {
			b.WriteString(r.Snippet)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// resultTitles returns up to max non-empty titles from the set.
func resultTitles(set types.AggregatedResult, max int) []string {
	var titles []string
	for _, r := range set.Results {
		if r.Title == "" {
			continue
		}
		titles = append(titles, r.Title)
		if len(titles) >= max {
			break
		}
	}
	return titles
}

// collectCitations returns the ordered union of result URLs across the sets,
// empty strings filtered out.
func collectCitations(sets ...types.AggregatedResult) []string {
	seen := make(map[string]bool)
	var urls []string
	for _, set := range sets {
		for _, r := range set.Results {
			if r.URL == "" || seen[r.URL] {
				continue
			}
			seen[r.URL] = true
			urls = append(urls, r.URL)
		}
	}
	return urls
}
