// Copyright Venturely Inc., 2026. All rights reserved.

package types

// Stage is a funding stage. Stages map to ordinals 1-5 for compatibility
// arithmetic; see StageOrdinal.
type Stage string

const (
	StagePreSeed Stage = "pre-seed"
	StageSeed    Stage = "seed"
	StageSeriesA Stage = "series-a"
	StageSeriesB Stage = "series-b"
	StageSeriesC Stage = "series-c"
)

// stageOrdinals maps each stage to its position in the funding ladder.
var stageOrdinals = map[Stage]int{
	StagePreSeed: 1,
	StageSeed:    2,
	StageSeriesA: 3,
	StageSeriesB: 4,
	StageSeriesC: 5,
}

// StageOrdinal returns the 1-based ladder position of s, or 0 for an
// unknown stage.
func StageOrdinal(s Stage) int {
	return stageOrdinals[s]
}

// StartupProfile describes the startup being analyzed. Supplied by the
// profile store; read-only to the engine.
type StartupProfile struct {
	Industry    string   `json:"industry" yaml:"industry" validate:"required,max=100"`
	Stage       Stage    `json:"stage" yaml:"stage" validate:"oneof=pre-seed seed series-a series-b series-c"`
	Description string   `json:"description" yaml:"description" validate:"max=5000"`
	TechStack   []string `json:"tech_stack" yaml:"tech_stack"`
	Location    string   `json:"location" yaml:"location" validate:"max=200"`
}
