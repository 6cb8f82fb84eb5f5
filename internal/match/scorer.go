// Copyright Venturely Inc., 2026. All rights reserved.

// Package match ranks catalog entities (capital providers, grant programs)
// against a startup profile with weighted multi-factor heuristics. Scoring
// is pure and deterministic: no clock, no randomness, no I/O.
package match

import (
	"math"
	"sort"
	"strings"

	"github.com/venturely/intel-engine/pkg/types"
)

// Factor weights. Each term is computed independently and summed; the total
// is capped at 100.
const (
	focusWeight       = 40.0
	stageWeight       = 30.0
	trackWeight       = 20.0
	techWeight        = 10.0
	eligibilityPer    = 10.0
	eligibilityCap    = 30.0
	amountWeight      = 20.0
	defaultGrantFloor = 70
)

// stageAmountCeiling maps a profile stage ordinal to the grant amount (in
// dollars) that earns full amount-relevance credit. Zero means uncapped.
var stageAmountCeiling = map[int]int64{
	1: 100_000,
	2: 500_000,
	3: 2_000_000,
	4: 5_000_000,
	5: 0,
}

// Scorer computes match scores against a fixed configuration.
type Scorer struct {
	grantFloor int
}

// NewScorer builds a Scorer. A zero GrantMinScore gets the default floor
// of 70.
func NewScorer(cfg types.MatchConfig) *Scorer {
	floor := cfg.GrantMinScore
	if floor <= 0 {
		floor = defaultGrantFloor
	}
	return &Scorer{grantFloor: floor}
}

// Score ranks candidates against profile, descending by score. The sort is
// stable, so candidates with equal scores keep catalog insertion order.
// Grant candidates below the floor are dropped entirely; investors are
// never filtered, only ranked.
func (s *Scorer) Score(profile types.StartupProfile, candidates []types.CandidateEntity) []types.MatchResult {
	results := make([]types.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		score := scoreCandidate(profile, c)
		if c.Kind == types.KindGrant && score < s.grantFloor {
			continue
		}
		results = append(results, types.MatchResult{EntityID: c.ID, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// scoreCandidate computes the bounded match score for one candidate.
func scoreCandidate(profile types.StartupProfile, c types.CandidateEntity) int {
	total := focusTerm(profile, c) + trackRecordTerm(profile, c) + techOverlapTerm(profile, c)

	if c.Kind == types.KindGrant {
		total += eligibilityTerm(profile, c) + amountRelevanceTerm(profile, c)
	} else {
		total += stageTerm(profile, c)
	}

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// focusTerm awards the full focus weight when the profile industry is one
// of the candidate's focus areas (case-insensitive).
func focusTerm(profile types.StartupProfile, c types.CandidateEntity) float64 {
	industry := strings.ToLower(strings.TrimSpace(profile.Industry))
	if industry == "" {
		return 0
	}
	for _, area := range c.FocusAreas {
		if strings.ToLower(strings.TrimSpace(area)) == industry {
			return focusWeight
		}
	}
	return 0
}

// stageTerm scales the stage weight by compatibility between the profile
// stage and the candidate's stage range: full credit inside the range,
// minus 0.2 per ladder step outside it.
func stageTerm(profile types.StartupProfile, c types.CandidateEntity) float64 {
	diff := stageDistance(profile.Stage, c.StageMin, c.StageMax)
	if diff < 0 {
		return 0
	}
	compat := 1.0 - 0.2*float64(diff)
	if compat < 0 {
		compat = 0
	}
	return compat * stageWeight
}

// stageDistance returns how many ladder steps the profile stage sits outside
// the candidate's [min, max] stage range, 0 when inside, or -1 when any
// stage involved is unknown.
func stageDistance(profileStage, min, max types.Stage) int {
	p := types.StageOrdinal(profileStage)
	lo := types.StageOrdinal(min)
	hi := types.StageOrdinal(max)

	if lo == 0 {
		lo = hi
	}
	if hi == 0 {
		hi = lo
	}
	if p == 0 || lo == 0 {
		return -1
	}

	switch {
	case p < lo:
		return lo - p
	case p > hi:
		return p - hi
	default:
		return 0
	}
}

// trackRecordTerm scales the track weight by the fraction of track-record
// entries that overlap the profile: an entry mentioning the industry, or an
// entry referenced in the profile description.
func trackRecordTerm(profile types.StartupProfile, c types.CandidateEntity) float64 {
	if len(c.TrackRecord) == 0 {
		return 0
	}

	industry := strings.ToLower(strings.TrimSpace(profile.Industry))
	desc := strings.ToLower(profile.Description)

	matched := 0
	for _, entry := range c.TrackRecord {
		e := strings.ToLower(strings.TrimSpace(entry))
		if e == "" {
			continue
		}
		if (industry != "" && strings.Contains(e, industry)) || strings.Contains(desc, e) {
			matched++
		}
	}
	return float64(matched) / float64(len(c.TrackRecord)) * trackWeight
}

// techOverlapTerm awards the tech weight when any profile tech-stack entry
// is a substring of any focus area.
func techOverlapTerm(profile types.StartupProfile, c types.CandidateEntity) float64 {
	for _, tech := range profile.TechStack {
		tl := strings.ToLower(strings.TrimSpace(tech))
		if tl == "" {
			continue
		}
		for _, area := range c.FocusAreas {
			if strings.Contains(strings.ToLower(area), tl) {
				return techWeight
			}
		}
	}
	return 0
}

// eligibilityTerm awards credit per satisfied grant requirement: the
// requirement text found as a substring of the profile's industry,
// description, and location. Capped at the eligibility cap.
func eligibilityTerm(profile types.StartupProfile, c types.CandidateEntity) float64 {
	haystack := strings.ToLower(profile.Industry + " " + profile.Description + " " + profile.Location)

	term := 0.0
	for _, req := range c.Eligibility {
		r := strings.ToLower(strings.TrimSpace(req))
		if r == "" {
			continue
		}
		if strings.Contains(haystack, r) {
			term += eligibilityPer
		}
	}
	if term > eligibilityCap {
		term = eligibilityCap
	}
	return term
}

// amountRelevanceTerm scales the amount weight by how plausible the grant
// award is for the declared stage: full credit at or under the stage
// ceiling, decaying credit above it, none for a missing amount.
func amountRelevanceTerm(profile types.StartupProfile, c types.CandidateEntity) float64 {
	if c.Amount <= 0 {
		return 0
	}

	ceiling := stageAmountCeiling[types.StageOrdinal(profile.Stage)]
	if ceiling == 0 || c.Amount <= ceiling {
		return amountWeight
	}
	return float64(ceiling) / float64(c.Amount) * amountWeight
}
