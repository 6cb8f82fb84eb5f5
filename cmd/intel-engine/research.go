// Copyright Venturely Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/venturely/intel-engine/pkg/types"
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Aggregate public research sources for a query",
	Long: `Research fans a query out to the enabled sources (encyclopedia, news
feed, public datasets), deduplicates the merged results, and prints them in
source-priority order. When too few live results come back, synthesized
industry insights are substituted and marked with a disclaimer.`,
	RunE: runResearch,
}

func init() {
	researchCmd.Flags().String("query", "", "free-text research question (required)")
	researchCmd.Flags().String("category", "market", "research aspect: market, competitors, or trends")
	researchCmd.Flags().Int("limit", 10, "maximum number of merged results")
	researchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := commandContext()
	defer cancel()

	e, cleanup, err := buildEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := e.Research(ctx, types.ResearchQuery{
		Text:        query,
		ResultLimit: limit,
		Category:    types.ResearchCategory(category),
	})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatResearchOutput(result, jsonOutput)
}

func formatResearchOutput(result types.AggregatedResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if len(result.Results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-14s  %-50s  %s\n", "Rank", "Source", "Title", "URL")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for i, r := range result.Results {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-14s  %-50s  %s\n", i+1, r.SourceID, title, r.URL)
	}
	fmt.Fprintf(os.Stdout, "\n%d results (of %d merged)\n", len(result.Results), result.TotalCount)

	if result.Degraded() {
		fmt.Fprintf(os.Stdout, "\nNote: %s\n", result.Disclaimer)
	}
	return nil
}
