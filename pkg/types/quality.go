// Copyright Venturely Inc., 2026. All rights reserved.

package types

// SectionSpec is the static configuration for one business-plan or pitch
// section type: the word-count band and the topical elements the text must
// cover.
type SectionSpec struct {
	ID               string   `json:"id" yaml:"id"`
	MinWords         int      `json:"min_words" yaml:"min_words"`
	MaxWords         int      `json:"max_words" yaml:"max_words"`
	RequiredElements []string `json:"required_elements" yaml:"required_elements"`
}

// QualityAssessment scores one text block against a SectionSpec. Derived and
// ephemeral: recomputed per text revision.
type QualityAssessment struct {
	// Score is the unweighted mean of the three sub-scores, in [0, 100].
	Score int `json:"score" yaml:"score"`

	Completeness    int `json:"completeness" yaml:"completeness"`
	Professionalism int `json:"professionalism" yaml:"professionalism"`
	InvestorAppeal  int `json:"investor_appeal" yaml:"investor_appeal"`

	WordCount int `json:"word_count" yaml:"word_count"`

	Strengths    []string `json:"strengths" yaml:"strengths"`
	Improvements []string `json:"improvements" yaml:"improvements"`

	// Verdict is one of "excellent", "good", "acceptable", "needs-revision".
	Verdict string `json:"verdict" yaml:"verdict"`
}
