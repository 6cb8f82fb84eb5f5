// Copyright Venturely Inc., 2026. All rights reserved.

// Package research fans a query out to all configured source clients in
// parallel, merges whatever returns within the per-source deadline, and
// degrades to a synthesized fallback tier when live signal is too thin.
package research

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/venturely/intel-engine/internal/source"
	"github.com/venturely/intel-engine/pkg/types"
)

const (
	defaultSourceTimeout = 10 * time.Second
	defaultMinResults    = 2
	defaultResultLimit   = 10
)

// Aggregator merges results from all registered source clients. Client
// registration order is the merge priority order: register the encyclopedia
// client first, then news, then dataset.
type Aggregator struct {
	clients []source.Client
	cfg     types.ResearchConfig
	logger  *zap.Logger
}

// NewAggregator builds an Aggregator over clients. Zero config values get
// defaults.
func NewAggregator(clients []source.Client, cfg types.ResearchConfig, logger *zap.Logger) *Aggregator {
	if cfg.SourceTimeout <= 0 {
		cfg.SourceTimeout = defaultSourceTimeout
	}
	if cfg.MinResults <= 0 {
		cfg.MinResults = defaultMinResults
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{clients: clients, cfg: cfg, logger: logger}
}

// Aggregate dispatches q to every client concurrently, waits for all
// outcomes, and returns the merged result set. It never returns an error:
// source failures contribute nothing, and when the merged set is below the
// minimum threshold the synthesized fallback tier is substituted with a
// disclaimer.
//
// Total latency is bounded by the per-source deadline, not its sum across
// sources, because all calls run concurrently and each carries its own
// timeout. Merge order is deterministic: each client writes into its own
// slot, so completion order never affects output order.
func (a *Aggregator) Aggregate(ctx context.Context, q types.ResearchQuery) types.AggregatedResult {
	if q.ResultLimit <= 0 {
		q.ResultLimit = defaultResultLimit
	}

	slots := make([][]types.SourceResult, len(a.clients))
	var wg sync.WaitGroup

	for i, c := range a.clients {
		wg.Add(1)
		go func(i int, c source.Client) {
			defer wg.Done()

			cctx, cancel := context.WithTimeout(ctx, a.cfg.SourceTimeout)
			defer cancel()

			results, err := c.Lookup(cctx, q, a.cfg)
			if err != nil {
				a.logger.Debug("source lookup failed",
					zap.String("source", c.Name()),
					zap.String("category", string(q.Category)),
					zap.Error(err))
				return
			}
			slots[i] = results
		}(i, c)
	}
	wg.Wait()

	merged := merge(slots)

	degraded := len(merged) < a.cfg.MinResults
	if degraded {
		insights := SynthesizeInsights(q)
		a.logger.Info("substituting fallback insights",
			zap.String("category", string(q.Category)),
			zap.Int("live_results", len(merged)),
			zap.Int("fallback_results", len(insights)))
		merged = insights
	}

	out := types.AggregatedResult{
		Results:    merged,
		TotalCount: len(merged),
	}
	if degraded {
		out.Disclaimer = FallbackDisclaimer
	}
	if len(out.Results) > q.ResultLimit {
		out.Results = out.Results[:q.ResultLimit]
	}
	return out
}

// merge flattens per-client result slots in priority order, dropping
// duplicates. The dedup key is the URL, or the normalized title when the
// URL is empty.
func merge(slots [][]types.SourceResult) []types.SourceResult {
	seen := make(map[string]bool)
	var merged []types.SourceResult

	for _, slot := range slots {
		for _, r := range slot {
			key := r.URL
			if key == "" {
				key = "title:" + normalizeTitle(r.Title)
			}
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, r)
		}
	}
	return merged
}

// normalizeTitle returns a lowercased, punctuation-stripped version of the
// title for URL-less dedup.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
