// Copyright Venturely Inc., 2026. All rights reserved.

package quality

import (
	"regexp"
	"strings"
)

// Lexical heuristics behind the professionalism and investor-appeal
// sub-scores. Each indicator is binary; five indicators per sub-score at
// 20 points each.

var (
	// currencyPattern matches dollar figures like "$4.5 billion" or "$120M".
	currencyPattern = regexp.MustCompile(`(?i)(?:\$|USD\s?)\s?\d+(?:[.,]\d+)?(?:\s?(?:trillion|billion|million|thousand|[TBMK]))?\b`)

	// percentPattern matches percentage figures like "12%" or "8.5 percent".
	percentPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s?(?:%|percent)`)

	// multiplierPattern matches growth multiples like "3x" or "2.5x".
	multiplierPattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?x\b`)
)

// marketVocab signals the text talks about its market and customers.
var marketVocab = []string{
	"market", "customer", "client", "user", "segment", "demand", "audience",
}

// hyperbole is the denylist of adjectives that read as unsubstantiated hype.
var hyperbole = []string{
	"revolutionary", "groundbreaking", "unprecedented", "world-class",
	"game-changing", "guaranteed", "incredible", "best-in-class", "unbeatable",
}

// revenueVocab signals revenue and growth framing.
var revenueVocab = []string{
	"revenue", "arr", "mrr", "growth", "traction", "run rate", "sales",
}

// sizingVocab signals explicit market sizing.
var sizingVocab = []string{
	"tam", "sam", "som", "addressable market", "market size", "market opportunity",
}

// differentiationVocab signals competitive positioning.
var differentiationVocab = []string{
	"competitive advantage", "differentiat", "moat", "proprietary", "unique", "barrier to entry",
}

// scalabilityVocab signals a scalable model.
var scalabilityVocab = []string{
	"scalab", "scale", "recurring", "expansion", "expand", "compounding",
}

// professionalismFloor is the word count below which the length indicator
// fails.
const professionalismFloor = 50

// containsAny reports whether any needle occurs in the lowercased text.
func containsAny(lowerText string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lowerText, n) {
			return true
		}
	}
	return false
}

// findHyperbole returns the denylist words present in the lowercased text.
func findHyperbole(lowerText string) []string {
	var found []string
	for _, w := range hyperbole {
		if strings.Contains(lowerText, w) {
			found = append(found, w)
		}
	}
	return found
}
