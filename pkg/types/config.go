// Copyright Venturely Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "intel-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResearchConfig holds settings for the research aggregation stage.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// SourceTimeout is the per-source-client deadline. The aggregator's
	// total latency is bounded by this value, not its sum across sources.
	SourceTimeout time.Duration `json:"source_timeout" yaml:"source_timeout"`

	// MinResults is the merged-result threshold below which the fallback
	// tier is substituted (default 2).
	MinResults int `json:"min_results" yaml:"min_results"`

	// EnableEncyclopedia controls the encyclopedic summary source.
	EnableEncyclopedia bool `json:"enable_encyclopedia" yaml:"enable_encyclopedia"`

	// EnableNewsFeed controls the news syndication source.
	EnableNewsFeed bool `json:"enable_news_feed" yaml:"enable_news_feed"`

	// EnableDataset controls the static public-dataset source.
	EnableDataset bool `json:"enable_dataset" yaml:"enable_dataset"`
}

// InferenceConfig holds settings for the language-model capability.
type InferenceConfig struct {
	// Model is the model identifier (e.g. "gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the inference API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout is the per-inference-call deadline. Longer than the source
	// timeout; on expiry the synthesizer falls back to heuristics.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retry attempts for rate-limited calls
	// (default 2).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CatalogConfig holds settings for the candidate catalog store.
type CatalogConfig struct {
	// Path is the SQLite database file (e.g. "catalog/intel.db").
	Path string `json:"path" yaml:"path"`
}

// MatchConfig holds settings for the match scorer.
type MatchConfig struct {
	// GrantMinScore is the score below which grant candidates are dropped
	// from results (default 70). Investors are never filtered.
	GrantMinScore int `json:"grant_min_score" yaml:"grant_min_score"`
}

// EngineConfig groups all component configurations.
type EngineConfig struct {
	Research  ResearchConfig  `json:"research" yaml:"research"`
	Inference InferenceConfig `json:"inference" yaml:"inference"`
	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog"`
	Match     MatchConfig     `json:"match" yaml:"match"`
}
