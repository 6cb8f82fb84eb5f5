// Copyright Venturely Inc., 2026. All rights reserved.

package research

import (
	"fmt"
	"strings"

	"github.com/venturely/intel-engine/pkg/types"
)

// FallbackSourceID marks results produced by the synthesized fallback tier.
const FallbackSourceID = "fallback"

// FallbackDisclaimer is attached to every degraded result set.
const FallbackDisclaimer = "Live research sources were unavailable or returned too little signal; " +
	"these insights are synthesized from a curated industry knowledge base and may not reflect current events."

// insight is one pre-authored fallback result, before category framing.
type insight struct {
	title   string
	snippet string
}

// industryKeywords maps query terms to an industry key. Checked in slice
// order so a query matching several industries always resolves the same way.
var industryKeywords = []struct {
	industry string
	terms    []string
}{
	{"fintech", []string{"fintech", "payment", "banking", "lending", "insurtech", "finance"}},
	{"healthcare", []string{"health", "medical", "telehealth", "biotech", "clinic", "patient"}},
	{"saas", []string{"saas", "software as a service", "b2b software", "subscription software", "cloud software"}},
	{"ecommerce", []string{"e-commerce", "ecommerce", "retail", "marketplace", "d2c", "online store"}},
	{"edtech", []string{"edtech", "education", "learning", "tutoring", "upskilling"}},
}

// industryInsights holds the pre-authored insight sets. The default set
// covers industries without bespoke content; adding an industry is a data
// change here, not a code change.
var industryInsights = map[string][]insight{
	"fintech": {
		{"Digital payments keep displacing cash", "Global digital payment volume continues double-digit growth as consumers and SMBs move away from cash and card-present transactions."},
		{"Embedded finance expands the buyer pool", "Non-financial platforms increasingly embed lending, payments, and insurance, opening distribution channels that did not exist five years ago."},
		{"Regulatory scrutiny is the main drag", "Licensing, open-banking mandates, and consumer-protection rules raise compliance cost and slow go-to-market for new entrants."},
	},
	"healthcare": {
		{"Telehealth is now a default care channel", "Virtual-first care models retain strong post-pandemic adoption, particularly for behavioral health and chronic-condition follow-ups."},
		{"Aging demographics drive structural demand", "Populations over 65 are the fastest-growing patient cohort in most developed markets, sustaining demand across care delivery and monitoring."},
		{"Reimbursement and privacy rules shape viability", "Payer coverage decisions and health-data regulation decide which digital health models survive at scale."},
	},
	"saas": {
		{"Buyers consolidate toward platforms", "Software budgets favor consolidated platforms over point solutions, raising the bar for single-feature products."},
		{"Usage-based pricing gains share", "Seat-based licensing keeps ceding ground to consumption pricing, tightening the link between delivered value and revenue."},
		{"Net revenue retention is the scaling lever", "Expansion revenue from existing accounts separates durable SaaS businesses from churn-limited ones."},
	},
	"ecommerce": {
		{"Acquisition costs reshape channel mix", "Rising paid-social costs push brands toward retention, marketplaces, and retail media as primary growth channels."},
		{"Logistics expectations keep ratcheting", "Two-day delivery is table stakes; same-day and transparent tracking increasingly decide conversion."},
		{"Social commerce grows from a small base", "Checkout inside social platforms is growing quickly but remains a minority of online retail in Western markets."},
	},
	"edtech": {
		{"Workforce upskilling outpaces K-12 spend", "Employer-funded reskilling and professional certification are the fastest-growing education segments."},
		{"Cohort and community models improve completion", "Programs with live cohorts and peer accountability report materially better completion than self-paced catalogs."},
		{"Institutional sales cycles stay long", "Selling into schools and universities still means multi-quarter procurement and pilot cycles."},
	},
	"default": {
		{"Capital favors efficient growth", "Across sectors, investors reward companies that pair moderate growth with clear unit economics over growth at any cost."},
		{"AI adoption is a cross-industry accelerant", "Applied AI is compressing product cycles and cost structures in most verticals, favoring teams that integrate it early."},
		{"Talent and distribution decide winners", "Access to specialized talent and owned distribution channels remain the most common moats cited across markets."},
	},
}

// matchIndustry maps free query text to an insight table key. Empty or
// unrecognized text selects the default set.
func matchIndustry(queryText string) string {
	text := strings.ToLower(queryText)
	for _, entry := range industryKeywords {
		for _, term := range entry.terms {
			if strings.Contains(text, term) {
				return entry.industry
			}
		}
	}
	return "default"
}

// SynthesizeInsights returns the pre-authored fallback result set for q.
// Deterministic: the same query always yields the same results, in the same
// order. Fallback results carry no URL.
func SynthesizeInsights(q types.ResearchQuery) []types.SourceResult {
	industry := matchIndustry(q.Text)
	insights := industryInsights[industry]

	results := make([]types.SourceResult, 0, len(insights))
	for _, ins := range insights {
		results = append(results, types.SourceResult{
			Title:    fmt.Sprintf("%s (%s outlook)", ins.title, industry),
			Snippet:  ins.snippet,
			SourceID: FallbackSourceID,
		})
	}
	return results
}
