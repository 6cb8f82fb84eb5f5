// Copyright Venturely Inc., 2026. All rights reserved.

package narrative

import (
	"bytes"
	"text/template"

	"github.com/venturely/intel-engine/pkg/types"
)

// analysisPromptTmpl is the prompt sent to the language model. It formats
// the three aggregated research sets into one context block and requests a
// structured JSON breakdown.
var analysisPromptTmpl = template.Must(template.New("analysis").Parse(`You are a startup market analyst. Using the research results below, produce a market analysis for the following company.

Company:
- industry: {{.Profile.Industry}}
- stage: {{.Profile.Stage}}
- location: {{.Profile.Location}}
- description: {{.Profile.Description}}

Research results (three sets: market, competitors, trends; some sets may be synthesized fallbacks and say so in a disclaimer):
{{range .Sets}}
## {{.Label}}{{if .Data.Disclaimer}} (disclaimer: {{.Data.Disclaimer}}){{end}}
{{range .Data.Results}}- {{.Title}}: {{.Snippet}}
{{end}}{{end}}

Respond with a single JSON object and nothing else:
{"market_size": "<one sentence with a dollar figure if the research supports one>",
 "growth_rate": "<one sentence with a percentage figure if supported>",
 "trends": ["<3-5 short trend statements>"],
 "competitors": ["<3-5 named or described competitors>"],
 "opportunities": ["<3-5 opportunities for this company>"],
 "threats": ["<3-5 threats or risks>"]}

Ground every statement in the research results. Do not invent figures the results do not contain.`))

// promptSet pairs a label with one aggregated result set for the template.
type promptSet struct {
	Label string
	Data  types.AggregatedResult
}

// renderPrompt builds the analysis prompt from the profile and the three
// aggregated sets.
func renderPrompt(profile types.StartupProfile, market, competitors, trends types.AggregatedResult) (string, error) {
	data := struct {
		Profile types.StartupProfile
		Sets    []promptSet
	}{
		Profile: profile,
		Sets: []promptSet{
			{Label: "Market", Data: market},
			{Label: "Competitors", Data: competitors},
			{Label: "Trends", Data: trends},
		},
	}

	var buf bytes.Buffer
	if err := analysisPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
