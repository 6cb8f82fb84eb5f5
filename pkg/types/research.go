// Copyright Venturely Inc., 2026. All rights reserved.

// Package types defines shared data structures for the startup intelligence
// engine: research aggregation, market analysis, match scoring, content
// quality assessment, and asynchronous tasks.
package types

import "time"

// ResearchCategory selects which aspect of a market the aggregator researches.
type ResearchCategory string

const (
	CategoryMarket      ResearchCategory = "market"
	CategoryCompetitors ResearchCategory = "competitors"
	CategoryTrends      ResearchCategory = "trends"
)

// ResearchQuery describes one aggregation call. Immutable once constructed.
type ResearchQuery struct {
	// Text is the free-text research question (e.g. "fintech payments
	// Europe"). Empty text is accepted and resolves to the default fallback
	// insight set.
	Text string `json:"text" yaml:"text" validate:"max=500"`

	// ResultLimit caps the number of merged results returned.
	ResultLimit int `json:"result_limit" yaml:"result_limit" validate:"gte=1,lte=50"`

	// Category is the research aspect: market, competitors, or trends.
	Category ResearchCategory `json:"category" yaml:"category" validate:"oneof=market competitors trends"`
}

// SourceResult is one normalized result from a single source client.
// Synthesized fallback results carry an empty URL.
type SourceResult struct {
	Title   string `json:"title" yaml:"title"`
	URL     string `json:"url" yaml:"url"`
	Snippet string `json:"snippet" yaml:"snippet"`

	// SourceID identifies the client that produced this result
	// (e.g. "encyclopedia", "newsfeed", "dataset", "fallback").
	SourceID string `json:"source_id" yaml:"source_id"`
}

// AggregatedResult is the merged, deduplicated output of one aggregation call.
type AggregatedResult struct {
	// Results are ordered by source priority, then first-seen order within a
	// source, deduplicated by URL. Truncated to the query's ResultLimit.
	Results []SourceResult `json:"results" yaml:"results"`

	// TotalCount is the number of results before truncation.
	TotalCount int `json:"total_count" yaml:"total_count"`

	// Disclaimer is non-empty when the results were synthesized from the
	// fallback tier instead of live sources.
	Disclaimer string `json:"disclaimer,omitempty" yaml:"disclaimer,omitempty"`
}

// Degraded reports whether the result set came from the fallback tier.
func (a AggregatedResult) Degraded() bool {
	return a.Disclaimer != ""
}

// MarketAnalysis is a structured market breakdown produced by the narrative
// synthesizer. Immutable once produced; regeneration creates a new record.
type MarketAnalysis struct {
	MarketSize    string   `json:"market_size" yaml:"market_size"`
	GrowthRate    string   `json:"growth_rate" yaml:"growth_rate"`
	Trends        []string `json:"trends" yaml:"trends"`
	Competitors   []string `json:"competitors" yaml:"competitors"`
	Opportunities []string `json:"opportunities" yaml:"opportunities"`
	Threats       []string `json:"threats" yaml:"threats"`

	// Citations is the ordered union of source URLs backing the analysis,
	// empty when the analysis was produced entirely by heuristics.
	Citations []string `json:"citations" yaml:"citations"`

	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}
