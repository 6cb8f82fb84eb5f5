// Copyright Venturely Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturely/intel-engine/pkg/types"
)

const testSeed = `entities:
  - id: inv-alpha
    name: Alpha Ventures
    kind: investor
    focus_areas: [fintech, saas]
    stage_min: seed
    stage_max: series-a
    ticket: "$250k-$2M"
    track_record: [acme pay, ledgerly]
  - id: inv-beta
    name: Beta Capital
    kind: investor
    focus_areas: [healthcare]
    stage_min: series-a
    stage_max: series-c
    ticket: "$1M-$10M"
    track_record: []
  - id: grant-gov
    name: Innovation Grant Program
    kind: grant
    focus_areas: [fintech]
    stage_min: pre-seed
    stage_max: seed
    amount: 50000
    track_record: []
    eligibility: [fintech, berlin]
section_specs:
  - id: market-analysis
    min_words: 150
    max_words: 400
    required_elements: [market size, competitors, growth rate]
  - id: executive-summary
    min_words: 100
    max_words: 300
    required_elements: [problem, solution]
`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()

	store, err := NewStore(types.CatalogConfig{Path: filepath.Join(dir, "catalog.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(testSeed), 0o644))

	_, err = store.Import(context.Background(), seedPath, io.Discard)
	require.NoError(t, err)
	return store
}

func TestImportRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	investors, err := store.Candidates(ctx, types.KindInvestor)
	require.NoError(t, err)
	require.Len(t, investors, 2)

	// Catalog order is insertion order.
	assert.Equal(t, "inv-alpha", investors[0].ID)
	assert.Equal(t, "inv-beta", investors[1].ID)

	alpha := investors[0]
	assert.Equal(t, "Alpha Ventures", alpha.Name)
	assert.Equal(t, []string{"fintech", "saas"}, alpha.FocusAreas)
	assert.Equal(t, types.StageSeed, alpha.StageMin)
	assert.Equal(t, types.StageSeriesA, alpha.StageMax)
	assert.Equal(t, "$250k-$2M", alpha.Ticket)
	assert.Equal(t, []string{"acme pay", "ledgerly"}, alpha.TrackRecord)
	assert.Empty(t, alpha.Eligibility)

	grants, err := store.Candidates(ctx, types.KindGrant)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, int64(50000), grants[0].Amount)
	assert.Equal(t, []string{"fintech", "berlin"}, grants[0].Eligibility)
}

func TestImportIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(testSeed), 0o644))

	summary, err := store.Import(ctx, seedPath, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Entities)
	assert.Equal(t, 2, summary.Specs)

	investors, err := store.Candidates(ctx, types.KindInvestor)
	require.NoError(t, err)
	require.Len(t, investors, 2)
	assert.Equal(t, "inv-alpha", investors[0].ID)
}

func TestSectionSpecLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	spec, ok, err := store.SectionSpec(ctx, "market-analysis")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 150, spec.MinWords)
	assert.Equal(t, 400, spec.MaxWords)
	assert.Equal(t, []string{"market size", "competitors", "growth rate"}, spec.RequiredElements)

	_, ok, err = store.SectionSpec(ctx, "nonexistent")
	require.NoError(t, err)
	assert.False(t, ok)

	specs, err := store.SectionSpecs(ctx)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "executive-summary", specs[0].ID)
}

func TestImportRejectsBadSeed(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(types.CatalogConfig{Path: filepath.Join(dir, "catalog.db")})
	require.NoError(t, err)
	defer store.Close()

	tests := []struct {
		name string
		seed string
	}{
		{"missing id", "entities:\n  - name: Nameless\n    kind: investor\n"},
		{"unknown kind", "entities:\n  - id: x\n    name: X\n    kind: accelerator\n"},
		{"malformed yaml", "entities: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seedPath := filepath.Join(dir, "bad.yaml")
			require.NoError(t, os.WriteFile(seedPath, []byte(tt.seed), 0o644))
			_, err := store.Import(context.Background(), seedPath, io.Discard)
			assert.Error(t, err)
		})
	}
}
