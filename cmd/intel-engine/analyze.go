// Copyright Venturely Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/venturely/intel-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Synthesize a market analysis for a startup profile",
	Long: `Analyze researches the profile's market, competitors, and trends
concurrently and synthesizes a structured market analysis. With a configured
inference API key the narrative comes from the language model; otherwise
figures are extracted heuristically from the research results.

With --async the analysis runs as a tracked task and progress is reported
while it runs.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("industry", "", "startup industry (required)")
	analyzeCmd.Flags().String("stage", "seed", "funding stage: pre-seed, seed, series-a, series-b, series-c")
	analyzeCmd.Flags().String("description", "", "short startup description")
	analyzeCmd.Flags().String("tech", "", "technology stack (comma-separated)")
	analyzeCmd.Flags().String("location", "", "startup location")
	analyzeCmd.Flags().Bool("async", false, "run as a tracked task with progress reporting")
	analyzeCmd.Flags().Bool("json", false, "output the analysis as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func profileFromFlags(cmd *cobra.Command) types.StartupProfile {
	industry, _ := cmd.Flags().GetString("industry")
	stage, _ := cmd.Flags().GetString("stage")
	description, _ := cmd.Flags().GetString("description")
	tech, _ := cmd.Flags().GetString("tech")
	location, _ := cmd.Flags().GetString("location")

	var stack []string
	for _, t := range strings.Split(tech, ",") {
		if t = strings.TrimSpace(t); t != "" {
			stack = append(stack, t)
		}
	}

	return types.StartupProfile{
		Industry:    industry,
		Stage:       types.Stage(stage),
		Description: description,
		TechStack:   stack,
		Location:    location,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	profile := profileFromFlags(cmd)

	ctx, cancel := commandContext()
	defer cancel()

	e, cleanup, err := buildEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	async, _ := cmd.Flags().GetBool("async")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if !async {
		analysis, err := e.Analyze(ctx, profile)
		if err != nil {
			return err
		}
		return formatAnalysisOutput(analysis, jsonOutput)
	}

	h, err := e.AnalyzeAsync(ctx, profile)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "task %s started\n", h.ID)

	done := make(chan struct{})
	go func() {
		h.Wait()
		close(done)
	}()
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if t, ok := e.Tasks().Get(h.ID); ok {
				fmt.Fprintf(os.Stderr, "  %.0f%%\n", t.Progress)
			}
		case <-done:
			t, ok := e.Tasks().Get(h.ID)
			if !ok {
				return fmt.Errorf("task %s vanished", h.ID)
			}
			if t.Status == types.TaskFailed {
				return fmt.Errorf("analysis failed: %s", t.Error)
			}
			analysis, ok := t.Result.(types.MarketAnalysis)
			if !ok {
				return fmt.Errorf("task %s finished without an analysis", h.ID)
			}
			return formatAnalysisOutput(analysis, jsonOutput)
		}
	}
}

func formatAnalysisOutput(a types.MarketAnalysis, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	fmt.Fprintf(os.Stdout, "Market size:   %s\n", a.MarketSize)
	fmt.Fprintf(os.Stdout, "Growth rate:   %s\n", a.GrowthRate)
	printList("Trends", a.Trends)
	printList("Competitors", a.Competitors)
	printList("Opportunities", a.Opportunities)
	printList("Threats", a.Threats)
	if len(a.Citations) > 0 {
		printList("Citations", a.Citations)
	}
	fmt.Fprintf(os.Stdout, "\nGenerated %s\n", a.GeneratedAt.Format(time.RFC3339))
	return nil
}

func printList(label string, items []string) {
	fmt.Fprintf(os.Stdout, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(os.Stdout, "  - %s\n", item)
	}
}
