// Copyright Venturely Inc., 2026. All rights reserved.

package types

// EntityKind distinguishes the two candidate catalogs.
type EntityKind string

const (
	KindInvestor EntityKind = "investor"
	KindGrant    EntityKind = "grant"
)

// CandidateEntity is one capital provider or grant program from the static
// catalog. Catalog data is read-only input to the scorer.
type CandidateEntity struct {
	ID   string     `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Kind EntityKind `json:"kind" yaml:"kind"`

	// FocusAreas lists the industries or themes the entity funds.
	FocusAreas []string `json:"focus_areas" yaml:"focus_areas"`

	// StageMin and StageMax bound the funding stages the entity serves.
	StageMin Stage `json:"stage_min" yaml:"stage_min"`
	StageMax Stage `json:"stage_max" yaml:"stage_max"`

	// Ticket is the investor's typical check size, informational only
	// (e.g. "$250k-$2M"). Empty for grants.
	Ticket string `json:"ticket,omitempty" yaml:"ticket,omitempty"`

	// Amount is the grant award in whole dollars. Zero for investors.
	Amount int64 `json:"amount,omitempty" yaml:"amount,omitempty"`

	// TrackRecord lists notable prior investments or funded projects.
	TrackRecord []string `json:"track_record" yaml:"track_record"`

	// Eligibility lists grant requirement phrases matched against the
	// profile. Empty for investors.
	Eligibility []string `json:"eligibility,omitempty" yaml:"eligibility,omitempty"`
}

// MatchResult pairs a candidate with its computed match score. Derived and
// ephemeral: recomputed on every request, never persisted.
type MatchResult struct {
	EntityID string `json:"entity_id" yaml:"entity_id"`

	// Score is the bounded match score in [0, 100].
	Score int `json:"score" yaml:"score"`
}
