// Copyright Venturely Inc., 2026. All rights reserved.

package narrative

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/venturely/intel-engine/internal/inference"
	"github.com/venturely/intel-engine/pkg/types"
)

// --- mock inference client ---

type mockInfer struct {
	response string
	err      error
	prompts  []string
}

func (m *mockInfer) Infer(_ context.Context, prompt string, _ inference.ResponseShape) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func testProfile() types.StartupProfile {
	return types.StartupProfile{
		Industry:    "fintech",
		Stage:       types.StageSeed,
		Description: "Cross-border payments for SMBs",
		TechStack:   []string{"go", "postgres"},
		Location:    "Berlin",
	}
}

func set(results ...types.SourceResult) types.AggregatedResult {
	return types.AggregatedResult{Results: results, TotalCount: len(results)}
}

func res(title, url, snippet string) types.SourceResult {
	return types.SourceResult{Title: title, URL: url, Snippet: snippet, SourceID: "test"}
}

// --- model path ---

func TestSynthesizeFromModelResponse(t *testing.T) {
	mi := &mockInfer{response: `{"market_size":"$4.5 billion by 2027","growth_rate":"12% CAGR","trends":["instant settlement"],"competitors":["Wise"],"opportunities":["SMB niche"],"threats":["regulation"]}`}
	s := NewSynthesizer(mi, types.InferenceConfig{}, nil)

	market := set(res("Fintech market", "https://x/m", "worth $4.5 billion"))
	got := s.Synthesize(context.Background(), testProfile(), market, set(), set())

	if got.MarketSize != "$4.5 billion by 2027" {
		t.Errorf("market size = %q", got.MarketSize)
	}
	if got.GrowthRate != "12% CAGR" {
		t.Errorf("growth rate = %q", got.GrowthRate)
	}
	if !reflect.DeepEqual(got.Competitors, []string{"Wise"}) {
		t.Errorf("competitors = %v", got.Competitors)
	}
	if !reflect.DeepEqual(got.Citations, []string{"https://x/m"}) {
		t.Errorf("citations = %v", got.Citations)
	}
	if len(mi.prompts) != 1 || !strings.Contains(mi.prompts[0], "Cross-border payments") {
		t.Error("prompt did not include the profile description")
	}
}

func TestSynthesizeToleratesCodeFence(t *testing.T) {
	mi := &mockInfer{response: "```json\n{\"market_size\":\"$1B\",\"growth_rate\":\"5%\"}\n```"}
	s := NewSynthesizer(mi, types.InferenceConfig{}, nil)

	got := s.Synthesize(context.Background(), testProfile(), set(), set(), set())
	if got.MarketSize != "$1B" {
		t.Errorf("market size = %q", got.MarketSize)
	}
	// Missing lists default to placeholders.
	if !reflect.DeepEqual(got.Trends, placeholderTrends) {
		t.Errorf("trends = %v, want placeholders", got.Trends)
	}
}

func TestSynthesizeBlankModelFieldsDefaulted(t *testing.T) {
	mi := &mockInfer{response: `{"market_size":"  ","trends":["", "  "]}`}
	s := NewSynthesizer(mi, types.InferenceConfig{}, nil)

	got := s.Synthesize(context.Background(), testProfile(), set(), set(), set())
	if got.MarketSize != placeholderMarketSize {
		t.Errorf("market size = %q, want placeholder", got.MarketSize)
	}
	if !reflect.DeepEqual(got.Trends, placeholderTrends) {
		t.Errorf("trends = %v, want placeholders", got.Trends)
	}
}

// --- fallback paths ---

func TestSynthesizeInferenceDownUsesHeuristics(t *testing.T) {
	mi := &mockInfer{err: inference.ErrUnavailable}
	s := NewSynthesizer(mi, types.InferenceConfig{}, nil)

	market := set(res("Market report", "https://x/m", "The market is worth $12.3 billion and grows 8.5% annually"))
	trends := set(res("AI adoption", "https://x/t", "AI spreads"))
	got := s.Synthesize(context.Background(), testProfile(), market, set(), trends)

	if !strings.Contains(got.MarketSize, "$12.3 billion") {
		t.Errorf("market size = %q, want currency figure", got.MarketSize)
	}
	if !strings.Contains(got.GrowthRate, "8.5%") {
		t.Errorf("growth rate = %q, want percent figure", got.GrowthRate)
	}
	if !reflect.DeepEqual(got.Trends, []string{"AI adoption"}) {
		t.Errorf("trends = %v", got.Trends)
	}
	if !reflect.DeepEqual(got.Citations, []string{"https://x/m", "https://x/t"}) {
		t.Errorf("citations = %v", got.Citations)
	}
}

func TestSynthesizeMalformedModelResponseUsesHeuristics(t *testing.T) {
	mi := &mockInfer{response: "I think the market is big."}
	s := NewSynthesizer(mi, types.InferenceConfig{}, nil)

	got := s.Synthesize(context.Background(), testProfile(), set(), set(), set())
	if got.MarketSize != placeholderMarketSize {
		t.Errorf("market size = %q, want placeholder", got.MarketSize)
	}
}

func TestSynthesizeWorstCaseAllPlaceholders(t *testing.T) {
	s := NewSynthesizer(nil, types.InferenceConfig{}, nil)

	got := s.Synthesize(context.Background(), testProfile(), set(), set(), set())
	if got.MarketSize != placeholderMarketSize || got.GrowthRate != placeholderGrowthRate {
		t.Errorf("want full placeholders, got %+v", got)
	}
	if len(got.Citations) != 0 {
		t.Errorf("citations = %v, want empty", got.Citations)
	}
	if got.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

// --- heuristic helpers ---

func TestCollectCitationsOrderedUnion(t *testing.T) {
	a := set(res("a", "https://x/1", ""), res("b", "", ""), res("c", "https://x/2", ""))
	b := set(res("d", "https://x/1", ""), res("e", "https://x/3", ""))

	got := collectCitations(a, b)
	want := []string{"https://x/1", "https://x/2", "https://x/3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("citations = %v, want %v", got, want)
	}
}

func TestCurrencyPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"valued at $4.5 billion today", "$4.5 billion"},
		{"roughly USD 3 trillion", "USD 3 trillion"},
		{"a $120M round", "$120M"},
		{"no figures here", ""},
	}
	for _, tt := range tests {
		if got := currencyPattern.FindString(tt.in); got != tt.want {
			t.Errorf("currencyPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercentPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"grows 12% annually", "12%"},
		{"8.5 percent CAGR", "8.5 percent"},
		{"no rate", ""},
	}
	for _, tt := range tests {
		if got := percentPattern.FindString(tt.in); got != tt.want {
			t.Errorf("percentPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
