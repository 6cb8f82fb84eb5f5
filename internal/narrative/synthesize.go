// Copyright Venturely Inc., 2026. All rights reserved.

// Package narrative turns aggregated research into a structured market
// analysis, via the language-model capability when it is available and a
// regex heuristic extractor when it is not.
package narrative

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/venturely/intel-engine/internal/inference"
	"github.com/venturely/intel-engine/pkg/types"
)

const defaultInferTimeout = 60 * time.Second

// Synthesizer produces MarketAnalysis records from aggregated research.
type Synthesizer struct {
	infer  inference.Client
	cfg    types.InferenceConfig
	logger *zap.Logger
}

// NewSynthesizer builds a Synthesizer. A nil inference client disables the
// model path entirely; every synthesis then uses the heuristic extractor.
func NewSynthesizer(client inference.Client, cfg types.InferenceConfig, logger *zap.Logger) *Synthesizer {
	if client == nil {
		client = inference.Disabled{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultInferTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{infer: client, cfg: cfg, logger: logger}
}

// modelAnalysis is the JSON shape requested from the model. Fields are
// validated and defaulted explicitly; the model's output is never trusted
// as-is.
type modelAnalysis struct {
	MarketSize    string   `json:"market_size"`
	GrowthRate    string   `json:"growth_rate"`
	Trends        []string `json:"trends"`
	Competitors   []string `json:"competitors"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// Synthesize turns the three aggregated sets into a MarketAnalysis. It never
// returns an error: inference failures of any kind (capability unavailable,
// rate limit, deadline, malformed response) fall through to the heuristic
// extractor, whose worst case is a fully placeholder-labeled record.
func (s *Synthesizer) Synthesize(ctx context.Context, profile types.StartupProfile, market, competitors, trends types.AggregatedResult) types.MarketAnalysis {
	prompt, err := renderPrompt(profile, market, competitors, trends)
	if err != nil {
		s.logger.Warn("prompt rendering failed, using heuristics", zap.Error(err))
		return extractHeuristic(market, competitors, trends)
	}

	ictx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	raw, err := s.infer.Infer(ictx, prompt, inference.ShapeJSON)
	if err != nil {
		s.logger.Info("inference unavailable, using heuristics", zap.Error(err))
		return extractHeuristic(market, competitors, trends)
	}

	parsed, err := parseModelAnalysis(raw)
	if err != nil {
		s.logger.Warn("model response rejected, using heuristics", zap.Error(err))
		return extractHeuristic(market, competitors, trends)
	}

	analysis := types.MarketAnalysis{
		MarketSize:    defaultString(parsed.MarketSize, placeholderMarketSize),
		GrowthRate:    defaultString(parsed.GrowthRate, placeholderGrowthRate),
		Trends:        defaultList(parsed.Trends, placeholderTrends),
		Competitors:   defaultList(parsed.Competitors, placeholderCompetitors),
		Opportunities: defaultList(parsed.Opportunities, placeholderOpportunities),
		Threats:       defaultList(parsed.Threats, placeholderThreats),
		Citations:     collectCitations(market, competitors, trends),
		GeneratedAt:   time.Now().UTC(),
	}
	return analysis
}

// parseModelAnalysis decodes the model's JSON, tolerating a fenced code
// block around the document.
func parseModelAnalysis(raw string) (modelAnalysis, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var parsed modelAnalysis
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return modelAnalysis{}, err
	}
	return parsed, nil
}

// defaultString returns v trimmed, or fallback when v is blank.
func defaultString(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

// defaultList returns v with blank entries dropped, or fallback when
// nothing survives.
func defaultList(v, fallback []string) []string {
	var out []string
	for _, item := range v {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
