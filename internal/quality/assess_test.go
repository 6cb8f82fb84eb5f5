// Copyright Venturely Inc., 2026. All rights reserved.

package quality

import (
	"strings"
	"testing"

	"github.com/venturely/intel-engine/pkg/types"
)

func execSummarySpec() types.SectionSpec {
	return types.SectionSpec{
		ID:               "executive-summary",
		MinWords:         200,
		MaxWords:         400,
		RequiredElements: []string{"mission", "problem", "solution", "market size"},
	}
}

// wordsOfFiller returns n filler words so tests can hit a target count.
func wordsOfFiller(n int) string {
	return strings.TrimSpace(strings.Repeat("the team executes steadily ", (n+3)/4))
}

func TestAssessEmptyText(t *testing.T) {
	got := Assess("", execSummarySpec())

	if got.WordCount != 0 {
		t.Errorf("word count = %d, want 0", got.WordCount)
	}
	if got.Completeness != 0 {
		t.Errorf("completeness = %d, want 0", got.Completeness)
	}
	if got.Verdict != VerdictNeedsRevision {
		t.Errorf("verdict = %q, want %q", got.Verdict, VerdictNeedsRevision)
	}
	if len(got.Improvements) == 0 {
		t.Error("improvements must be non-empty for empty text")
	}
}

func TestAssessEmptyTextNoRequiredElements(t *testing.T) {
	// A spec with no required elements counts as fully covered, but empty
	// text still scores zero completeness.
	spec := types.SectionSpec{ID: "free-form", MinWords: 50, MaxWords: 200}
	got := Assess("", spec)

	if got.Completeness != 0 {
		t.Errorf("completeness = %d, want 0", got.Completeness)
	}
	if got.Verdict != VerdictNeedsRevision {
		t.Errorf("verdict = %q, want %q", got.Verdict, VerdictNeedsRevision)
	}
}

func TestAssessRoundTrip(t *testing.T) {
	// All required elements, a currency figure, a percentage figure, word
	// count inside the band, plus enough investor vocabulary to clear the
	// appeal indicators.
	body := "Our mission is to fix a real problem with a focused solution. " +
		"The market size is $4.5 billion (our total addressable market) and grows 12% annually. " +
		"Revenue traction is strong with 3x year-over-year growth, a recurring and scalable model, " +
		"and a proprietary data moat as our competitive advantage for customers. "
	text := body + wordsOfFiller(250-len(strings.Fields(body)))

	wc := len(strings.Fields(text))
	if wc < 200 || wc > 400 {
		t.Fatalf("test text word count %d outside [200,400]", wc)
	}

	got := Assess(text, execSummarySpec())
	if got.Completeness != 100 {
		t.Errorf("completeness = %d, want 100", got.Completeness)
	}
	if got.Score < 85 {
		t.Errorf("score = %d, want >= 85", got.Score)
	}
}

func TestAssessTypicalSection(t *testing.T) {
	// 250 words, all four elements, one currency figure, one percentage.
	body := "Our mission targets a clear problem and delivers a working solution. " +
		"The market size is $2 billion for our customers and grows 9% a year. "
	text := body + wordsOfFiller(250-len(strings.Fields(body)))

	got := Assess(text, execSummarySpec())
	if got.Completeness < 90 {
		t.Errorf("completeness = %d, want >= 90", got.Completeness)
	}
	if got.Professionalism < 60 {
		t.Errorf("professionalism = %d, want >= 60", got.Professionalism)
	}
	if got.Verdict != VerdictGood && got.Verdict != VerdictExcellent {
		t.Errorf("verdict = %q, want good or excellent", got.Verdict)
	}
}

func TestAssessNamesMissingElements(t *testing.T) {
	text := "Our mission is clear. " + wordsOfFiller(60)
	got := Assess(text, execSummarySpec())

	var naming string
	for _, imp := range got.Improvements {
		if strings.HasPrefix(imp, "Add coverage of:") {
			naming = imp
		}
	}
	if naming == "" {
		t.Fatalf("improvements %v do not name missing elements", got.Improvements)
	}
	for _, want := range []string{"problem", "solution", "market size"} {
		if !strings.Contains(naming, want) {
			t.Errorf("%q does not name %q", naming, want)
		}
	}
	if strings.Contains(naming, "mission") {
		t.Errorf("%q names an element that is present", naming)
	}
}

func TestAssessHyperbolePenalized(t *testing.T) {
	base := "Our market has customers paying $10 monthly with 5% growth. " + wordsOfFiller(60)
	hyped := strings.Replace(base, "customers", "revolutionary groundbreaking customers", 1)

	clean := Assess(base, types.SectionSpec{MinWords: 10, MaxWords: 500})
	spun := Assess(hyped, types.SectionSpec{MinWords: 10, MaxWords: 500})

	if spun.Professionalism >= clean.Professionalism {
		t.Errorf("hyperbole professionalism %d not below clean %d", spun.Professionalism, clean.Professionalism)
	}
	var flagged bool
	for _, imp := range spun.Improvements {
		if strings.Contains(imp, "revolutionary") {
			flagged = true
		}
	}
	if !flagged {
		t.Errorf("improvements %v do not flag hyperbole", spun.Improvements)
	}
}

func TestLengthAdequacy(t *testing.T) {
	tests := []struct {
		name     string
		wc       int
		min, max int
		want     float64
	}{
		{"zero words", 0, 200, 400, 0},
		{"half of min", 100, 200, 400, 50},
		{"at min", 200, 200, 400, 100},
		{"in band", 300, 200, 400, 100},
		{"at max", 400, 200, 400, 100},
		{"double max", 800, 200, 400, 50},
		{"no bounds", 37, 0, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lengthAdequacy(tt.wc, tt.min, tt.max); got != tt.want {
				t.Errorf("lengthAdequacy(%d,%d,%d) = %v, want %v", tt.wc, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestMissingElementsFirstWordMatch(t *testing.T) {
	// "market size" absent, but its first word "market" present: counts.
	missing := missingElements("we serve a growing market", []string{"market size", "mission"})
	if len(missing) != 1 || missing[0] != "mission" {
		t.Errorf("missing = %v, want [mission]", missing)
	}
}

func TestVerdictTiers(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, VerdictExcellent},
		{86, VerdictExcellent},
		{85, VerdictGood},
		{71, VerdictGood},
		{70, VerdictAcceptable},
		{51, VerdictAcceptable},
		{50, VerdictNeedsRevision},
		{0, VerdictNeedsRevision},
	}
	for _, tt := range tests {
		if got := verdict(tt.score); got != tt.want {
			t.Errorf("verdict(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
