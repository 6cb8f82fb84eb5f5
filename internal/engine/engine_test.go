// Copyright Venturely Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturely/intel-engine/pkg/types"
)

// fakeCatalog serves fixed catalog data without SQLite.
type fakeCatalog struct {
	entities map[types.EntityKind][]types.CandidateEntity
	specs    map[string]types.SectionSpec
	err      error
}

func (f *fakeCatalog) Candidates(_ context.Context, kind types.EntityKind) ([]types.CandidateEntity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entities[kind], nil
}

func (f *fakeCatalog) SectionSpec(_ context.Context, id string) (types.SectionSpec, bool, error) {
	if f.err != nil {
		return types.SectionSpec{}, false, f.err
	}
	spec, ok := f.specs[id]
	return spec, ok, nil
}

func testConfig() types.EngineConfig {
	// All sources disabled so nothing leaves the process; aggregation falls
	// back to synthesized insights.
	return types.EngineConfig{}
}

func testProfile() types.StartupProfile {
	return types.StartupProfile{
		Industry:    "fintech",
		Stage:       types.StageSeed,
		Description: "payments infrastructure for marketplaces",
		TechStack:   []string{"go"},
		Location:    "Berlin",
	}
}

func newTestEngine(cat Catalog) *Engine {
	if cat == nil {
		cat = &fakeCatalog{}
	}
	return New(testConfig(), cat, nil, nil)
}

func TestResearchRejectsInvalidQuery(t *testing.T) {
	e := newTestEngine(nil)

	tests := []struct {
		name string
		q    types.ResearchQuery
	}{
		{"text too long", types.ResearchQuery{Text: strings.Repeat("x", 501), ResultLimit: 10, Category: types.CategoryMarket}},
		{"zero limit", types.ResearchQuery{Text: "fintech", Category: types.CategoryMarket}},
		{"limit too high", types.ResearchQuery{Text: "fintech", ResultLimit: 51, Category: types.CategoryMarket}},
		{"bad category", types.ResearchQuery{Text: "fintech", ResultLimit: 10, Category: "vibes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Research(context.Background(), tt.q)
			assert.Error(t, err)
		})
	}
}

func TestResearchAcceptsEmptyText(t *testing.T) {
	// Empty query text is not a validation error; it resolves to the
	// default fallback insight set.
	e := newTestEngine(nil)

	got, err := e.Research(context.Background(), types.ResearchQuery{
		ResultLimit: 10,
		Category:    types.CategoryMarket,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Results)
	assert.NotEmpty(t, got.Disclaimer)
}

func TestResearchDegradesWithoutSources(t *testing.T) {
	e := newTestEngine(nil)

	got, err := e.Research(context.Background(), types.ResearchQuery{
		Text:        "fintech payments europe",
		ResultLimit: 10,
		Category:    types.CategoryMarket,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Results)
	assert.NotEmpty(t, got.Disclaimer)
}

func TestAnalyzeWorstCaseStillProducesAnalysis(t *testing.T) {
	// No sources, no inference client: every field must still be populated
	// from fallback tiers.
	e := newTestEngine(nil)

	analysis, err := e.Analyze(context.Background(), testProfile())
	require.NoError(t, err)
	assert.NotEmpty(t, analysis.MarketSize)
	assert.NotEmpty(t, analysis.GrowthRate)
	assert.NotEmpty(t, analysis.Trends)
	assert.NotEmpty(t, analysis.Competitors)
	assert.NotEmpty(t, analysis.Opportunities)
	assert.NotEmpty(t, analysis.Threats)
	assert.False(t, analysis.GeneratedAt.IsZero())
}

func TestAnalyzeRejectsInvalidProfile(t *testing.T) {
	e := newTestEngine(nil)

	_, err := e.Analyze(context.Background(), types.StartupProfile{
		Industry: "fintech",
		Stage:    "series-z",
	})
	assert.Error(t, err)
}

func TestMatchGrantsAppliesFloor(t *testing.T) {
	cat := &fakeCatalog{entities: map[types.EntityKind][]types.CandidateEntity{
		types.KindGrant: {
			{
				ID: "grant-fit", Name: "Fintech Grant", Kind: types.KindGrant,
				FocusAreas:  []string{"fintech"},
				StageMin:    types.StageSeed, StageMax: types.StageSeed,
				Amount:      100000,
				Eligibility: []string{"fintech", "berlin"},
			},
			{
				ID: "grant-misfit", Name: "Biotech Grant", Kind: types.KindGrant,
				FocusAreas:  []string{"biotech"},
				StageMin:    types.StageSeriesC, StageMax: types.StageSeriesC,
				Amount:      5000000,
				Eligibility: []string{"laboratory"},
			},
		},
	}}
	e := newTestEngine(cat)

	got, err := e.MatchGrants(context.Background(), testProfile())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "grant-fit", got[0].EntityID)
}

func TestMatchInvestorsNeverFiltered(t *testing.T) {
	cat := &fakeCatalog{entities: map[types.EntityKind][]types.CandidateEntity{
		types.KindInvestor: {
			{
				ID: "inv-misfit", Name: "Deep Biotech Fund", Kind: types.KindInvestor,
				FocusAreas: []string{"biotech"},
				StageMin:   types.StageSeriesC, StageMax: types.StageSeriesC,
			},
		},
	}}
	e := newTestEngine(cat)

	got, err := e.MatchInvestors(context.Background(), testProfile())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "inv-misfit", got[0].EntityID)
}

func TestAssess(t *testing.T) {
	cat := &fakeCatalog{specs: map[string]types.SectionSpec{
		"market-analysis": {
			ID:               "market-analysis",
			MinWords:         5,
			MaxWords:         100,
			RequiredElements: []string{"market size"},
		},
	}}
	e := newTestEngine(cat)

	got, err := e.Assess(context.Background(), "The market size is $4 billion and growing.", "market-analysis")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Completeness)

	_, err = e.Assess(context.Background(), "text", "nonexistent")
	assert.Error(t, err)
}

func TestAnalyzeAsyncCompletes(t *testing.T) {
	e := newTestEngine(nil)

	h, err := e.AnalyzeAsync(context.Background(), testProfile())
	require.NoError(t, err)
	h.Wait()

	got, ok := e.Tasks().Get(h.ID)
	require.True(t, ok)
	assert.Equal(t, types.TaskCompleted, got.Status)
	assert.Equal(t, float64(100), got.Progress)

	analysis, ok := got.Result.(types.MarketAnalysis)
	require.True(t, ok)
	assert.NotEmpty(t, analysis.MarketSize)
}

func TestAnalyzeAsyncRejectsInvalidProfile(t *testing.T) {
	e := newTestEngine(nil)

	_, err := e.AnalyzeAsync(context.Background(), types.StartupProfile{})
	assert.Error(t, err)
	assert.Empty(t, e.Tasks().List())
}
