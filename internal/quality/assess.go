// Copyright Venturely Inc., 2026. All rights reserved.

// Package quality scores generated text against a section specification
// with structural and lexical heuristics, deciding whether machine-written
// content is investor ready. Pure computation: no I/O, no clock.
package quality

import (
	"fmt"
	"math"
	"strings"

	"github.com/venturely/intel-engine/pkg/types"
)

// Verdict tiers, selected by threshold on the aggregate score.
const (
	VerdictExcellent     = "excellent"
	VerdictGood          = "good"
	VerdictAcceptable    = "acceptable"
	VerdictNeedsRevision = "needs-revision"
)

// Assess scores text against spec. Empty text is not an error: it yields a
// zero word count, zero completeness, and a needs-revision verdict.
func Assess(text string, spec types.SectionSpec) types.QualityAssessment {
	words := strings.Fields(text)
	wordCount := len(words)
	lower := strings.ToLower(text)

	missing := missingElements(lower, spec.RequiredElements)
	coverage := elementCoverage(len(spec.RequiredElements), len(missing))
	adequacy := lengthAdequacy(wordCount, spec.MinWords, spec.MaxWords)
	completeness := int(math.Round(0.7*coverage + 0.3*adequacy))
	if wordCount == 0 {
		// Empty text covers nothing, even against a spec with no required
		// elements.
		completeness = 0
	}

	prof := professionalism(lower, wordCount)
	appeal := investorAppeal(lower)

	score := int(math.Round((float64(completeness) + float64(prof.score) + float64(appeal.score)) / 3.0))

	a := types.QualityAssessment{
		Score:           score,
		Completeness:    completeness,
		Professionalism: prof.score,
		InvestorAppeal:  appeal.score,
		WordCount:       wordCount,
		Verdict:         verdict(score),
	}
	a.Strengths, a.Improvements = feedback(spec, wordCount, missing, prof, appeal)
	return a
}

// elementCoverage returns the percentage of required elements present.
// A spec with no required elements counts as fully covered.
func elementCoverage(total, missing int) float64 {
	if total == 0 {
		return 100
	}
	return float64(total-missing) / float64(total) * 100
}

// missingElements returns the required elements not found in the text. An
// element counts as present when it appears as a case-insensitive substring,
// or when its first word does.
func missingElements(lowerText string, required []string) []string {
	var missing []string
	for _, elem := range required {
		e := strings.ToLower(strings.TrimSpace(elem))
		if e == "" {
			continue
		}
		if strings.Contains(lowerText, e) {
			continue
		}
		if first := strings.Fields(e); len(first) > 0 && strings.Contains(lowerText, first[0]) {
			continue
		}
		missing = append(missing, elem)
	}
	return missing
}

// lengthAdequacy scores the word count against the spec band: scaling
// linearly up to 100 at MinWords, full credit inside the band, and
// proportional penalty beyond MaxWords. Capped at 100, never negative.
func lengthAdequacy(wordCount, minWords, maxWords int) float64 {
	if wordCount <= 0 {
		return 0
	}
	if minWords > 0 && wordCount < minWords {
		return float64(wordCount) / float64(minWords) * 100
	}
	if maxWords > 0 && wordCount > maxWords {
		return float64(maxWords) / float64(wordCount) * 100
	}
	return 100
}

// indicatorResult carries a sub-score and which binary indicators passed.
type indicatorResult struct {
	score     int
	passed    map[string]bool
	hyperbole []string
}

// professionalism scores five binary indicators at 20 points each: a
// currency figure, a percentage figure, market/customer vocabulary, length
// above the floor, and absence of hyperbolic adjectives.
func professionalism(lowerText string, wordCount int) indicatorResult {
	found := findHyperbole(lowerText)
	passed := map[string]bool{
		"currency":     currencyPattern.MatchString(lowerText),
		"percent":      percentPattern.MatchString(lowerText),
		"market-vocab": containsAny(lowerText, marketVocab),
		"length":       wordCount >= professionalismFloor,
		"no-hyperbole": len(found) == 0 && wordCount > 0,
	}
	return indicatorResult{score: tally(passed), passed: passed, hyperbole: found}
}

// investorAppeal scores five binary indicators at 20 points each:
// revenue/growth vocabulary, explicit market sizing, competitive
// differentiation, a multiplier pattern, and scalability vocabulary.
func investorAppeal(lowerText string) indicatorResult {
	passed := map[string]bool{
		"revenue":         containsAny(lowerText, revenueVocab),
		"sizing":          containsAny(lowerText, sizingVocab),
		"differentiation": containsAny(lowerText, differentiationVocab),
		"multiplier":      multiplierPattern.MatchString(lowerText),
		"scalability":     containsAny(lowerText, scalabilityVocab),
	}
	return indicatorResult{score: tally(passed), passed: passed}
}

// tally converts passed indicators to a 0-100 sub-score.
func tally(passed map[string]bool) int {
	n := 0
	for _, ok := range passed {
		if ok {
			n++
		}
	}
	return n * 100 / len(passed)
}

// verdict selects the tier for an aggregate score.
func verdict(score int) string {
	switch {
	case score > 85:
		return VerdictExcellent
	case score > 70:
		return VerdictGood
	case score > 50:
		return VerdictAcceptable
	default:
		return VerdictNeedsRevision
	}
}

// feedback populates strengths and improvements from fixed rule templates
// keyed to which indicators passed or failed.
func feedback(spec types.SectionSpec, wordCount int, missing []string, prof, appeal indicatorResult) (strengths, improvements []string) {
	if len(spec.RequiredElements) > 0 && len(missing) == 0 {
		strengths = append(strengths, "Covers every required element for this section")
	}
	if prof.passed["currency"] {
		strengths = append(strengths, "Grounds the narrative with a concrete dollar figure")
	}
	if prof.passed["percent"] {
		strengths = append(strengths, "Quantifies growth or share with a percentage")
	}
	if appeal.passed["differentiation"] {
		strengths = append(strengths, "Articulates competitive differentiation")
	}
	if appeal.passed["multiplier"] {
		strengths = append(strengths, "Uses a growth multiple investors can anchor on")
	}

	if len(missing) > 0 {
		improvements = append(improvements,
			fmt.Sprintf("Add coverage of: %s", strings.Join(missing, ", ")))
	}
	if spec.MinWords > 0 && wordCount < spec.MinWords {
		improvements = append(improvements,
			fmt.Sprintf("Expand the section to at least %d words (currently %d)", spec.MinWords, wordCount))
	}
	if spec.MaxWords > 0 && wordCount > spec.MaxWords {
		improvements = append(improvements,
			fmt.Sprintf("Tighten the section to at most %d words (currently %d)", spec.MaxWords, wordCount))
	}
	if !prof.passed["currency"] {
		improvements = append(improvements, "Add a concrete dollar figure (market size, pricing, or revenue)")
	}
	if !prof.passed["percent"] {
		improvements = append(improvements, "Add a percentage figure (growth rate, margin, or market share)")
	}
	if len(prof.hyperbole) > 0 {
		improvements = append(improvements,
			fmt.Sprintf("Replace hyperbolic language with evidence: %s", strings.Join(prof.hyperbole, ", ")))
	}
	if !appeal.passed["sizing"] {
		improvements = append(improvements, "State the addressable market size explicitly")
	}
	if !appeal.passed["revenue"] {
		improvements = append(improvements, "Describe the revenue model or current traction")
	}
	return strengths, improvements
}
