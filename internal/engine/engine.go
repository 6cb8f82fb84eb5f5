// Copyright Venturely Inc., 2026. All rights reserved.

// Package engine composes the research, narrative, match, quality, and task
// components behind one validated facade.
package engine

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/venturely/intel-engine/internal/catalog"
	"github.com/venturely/intel-engine/internal/httputil"
	"github.com/venturely/intel-engine/internal/inference"
	"github.com/venturely/intel-engine/internal/match"
	"github.com/venturely/intel-engine/internal/narrative"
	"github.com/venturely/intel-engine/internal/quality"
	"github.com/venturely/intel-engine/internal/research"
	"github.com/venturely/intel-engine/internal/source"
	"github.com/venturely/intel-engine/internal/task"
	"github.com/venturely/intel-engine/pkg/types"
)

// Catalog is the read surface the engine needs from the catalog store.
// *catalog.Store satisfies it.
type Catalog interface {
	Candidates(ctx context.Context, kind types.EntityKind) ([]types.CandidateEntity, error)
	SectionSpec(ctx context.Context, id string) (types.SectionSpec, bool, error)
}

var _ Catalog = (*catalog.Store)(nil)

// Engine is the facade over the intelligence components. Inputs are
// validated here; the components assume valid input.
type Engine struct {
	validate   *validator.Validate
	aggregator *research.Aggregator
	synth      *narrative.Synthesizer
	scorer     *match.Scorer
	cat        Catalog
	orch       *task.Orchestrator
	logger     *zap.Logger
	cfg        types.EngineConfig
}

// New builds an Engine from cfg. Source clients are constructed per the
// research enable flags; infer may be nil, which disables model synthesis
// and leaves the heuristic path.
func New(cfg types.EngineConfig, cat Catalog, infer inference.Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := &http.Client{Timeout: cfg.Research.Timeout}
	var clients []source.Client
	if cfg.Research.EnableEncyclopedia {
		clients = append(clients, &source.EncyclopediaClient{
			Client:  httpClient,
			Breaker: httputil.NewBreaker(httputil.DefaultBreakerSettings("encyclopedia"), logger),
		})
	}
	if cfg.Research.EnableNewsFeed {
		clients = append(clients, &source.NewsFeedClient{
			Client:  httpClient,
			Breaker: httputil.NewBreaker(httputil.DefaultBreakerSettings("newsfeed"), logger),
		})
	}
	if cfg.Research.EnableDataset {
		clients = append(clients, &source.DatasetClient{
			Client:  httpClient,
			Breaker: httputil.NewBreaker(httputil.DefaultBreakerSettings("dataset"), logger),
		})
	}

	return &Engine{
		validate:   validator.New(),
		aggregator: research.NewAggregator(clients, cfg.Research, logger),
		synth:      narrative.NewSynthesizer(infer, cfg.Inference, logger),
		scorer:     match.NewScorer(cfg.Match),
		cat:        cat,
		orch:       task.NewOrchestrator(task.NewRegistry(), logger),
		logger:     logger,
		cfg:        cfg,
	}
}

// Research validates the query and aggregates results across the enabled
// sources. The only error surfaced is validation failure; source failures
// degrade into fallback content.
func (e *Engine) Research(ctx context.Context, q types.ResearchQuery) (types.AggregatedResult, error) {
	if err := e.validate.Struct(q); err != nil {
		return types.AggregatedResult{}, fmt.Errorf("invalid research query: %w", err)
	}
	return e.aggregator.Aggregate(ctx, q), nil
}

// categoryQueries builds the three research queries a full analysis needs.
func categoryQueries(profile types.StartupProfile) map[types.ResearchCategory]types.ResearchQuery {
	return map[types.ResearchCategory]types.ResearchQuery{
		types.CategoryMarket: {
			Text:        fmt.Sprintf("%s market size growth revenue", profile.Industry),
			ResultLimit: 10,
			Category:    types.CategoryMarket,
		},
		types.CategoryCompetitors: {
			Text:        fmt.Sprintf("%s companies startups competitors", profile.Industry),
			ResultLimit: 10,
			Category:    types.CategoryCompetitors,
		},
		types.CategoryTrends: {
			Text:        fmt.Sprintf("%s industry trends outlook", profile.Industry),
			ResultLimit: 10,
			Category:    types.CategoryTrends,
		},
	}
}

// Analyze runs market, competitor, and trend research for the profile
// concurrently and synthesizes a MarketAnalysis. Only validation failures
// surface as errors.
func (e *Engine) Analyze(ctx context.Context, profile types.StartupProfile) (types.MarketAnalysis, error) {
	if err := e.validate.Struct(profile); err != nil {
		return types.MarketAnalysis{}, fmt.Errorf("invalid startup profile: %w", err)
	}
	market, competitors, trends := e.gather(ctx, profile)
	return e.synth.Synthesize(ctx, profile, market, competitors, trends), nil
}

// gather runs the three category aggregations concurrently. Aggregation
// absorbs its own failures, so there is no error path.
func (e *Engine) gather(ctx context.Context, profile types.StartupProfile) (market, competitors, trends types.AggregatedResult) {
	queries := categoryQueries(profile)
	results := make(map[types.ResearchCategory]types.AggregatedResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	for c, q := range queries {
		g.Go(func() error {
			r := e.aggregator.Aggregate(gctx, q)
			mu.Lock()
			results[c] = r
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return results[types.CategoryMarket], results[types.CategoryCompetitors], results[types.CategoryTrends]
}

// AnalyzeAsync runs Analyze as a tracked task and returns its handle.
// Progress is staged: research contributes the bulk, synthesis the rest.
func (e *Engine) AnalyzeAsync(ctx context.Context, profile types.StartupProfile) (*task.Handle, error) {
	if err := e.validate.Struct(profile); err != nil {
		return nil, fmt.Errorf("invalid startup profile: %w", err)
	}
	name := fmt.Sprintf("analyze %s", profile.Industry)
	return e.orch.Start(ctx, name, func(tctx context.Context, progress chan<- float64) (any, error) {
		progress <- 10
		market, competitors, trends := e.gather(tctx, profile)
		progress <- 70
		if err := tctx.Err(); err != nil {
			return nil, err
		}
		analysis := e.synth.Synthesize(tctx, profile, market, competitors, trends)
		progress <- 95
		return analysis, nil
	})
}

// MatchInvestors scores the investor catalog against the profile.
func (e *Engine) MatchInvestors(ctx context.Context, profile types.StartupProfile) ([]types.MatchResult, error) {
	return e.matchKind(ctx, profile, types.KindInvestor)
}

// MatchGrants scores the grant catalog against the profile. Grants under
// the configured floor are omitted.
func (e *Engine) MatchGrants(ctx context.Context, profile types.StartupProfile) ([]types.MatchResult, error) {
	return e.matchKind(ctx, profile, types.KindGrant)
}

func (e *Engine) matchKind(ctx context.Context, profile types.StartupProfile, kind types.EntityKind) ([]types.MatchResult, error) {
	if err := e.validate.Struct(profile); err != nil {
		return nil, fmt.Errorf("invalid startup profile: %w", err)
	}
	candidates, err := e.cat.Candidates(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("reading %s catalog: %w", kind, err)
	}
	return e.scorer.Score(profile, candidates), nil
}

// Assess grades text against the named section spec.
func (e *Engine) Assess(ctx context.Context, text, sectionID string) (types.QualityAssessment, error) {
	spec, ok, err := e.cat.SectionSpec(ctx, sectionID)
	if err != nil {
		return types.QualityAssessment{}, fmt.Errorf("reading section spec: %w", err)
	}
	if !ok {
		return types.QualityAssessment{}, fmt.Errorf("unknown section spec %q", sectionID)
	}
	return quality.Assess(text, spec), nil
}

// Tasks returns the task registry for status reads.
func (e *Engine) Tasks() *task.Registry {
	return e.orch.Registry()
}

// CancelTask cancels a running task by handle.
func (e *Engine) CancelTask(h *task.Handle, reason string) {
	e.orch.Cancel(h, reason)
}
