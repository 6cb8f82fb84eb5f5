// Copyright Venturely Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/venturely/intel-engine/pkg/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score the investor or grant catalog against a startup profile",
	Long: `Match scores every catalog entity of the chosen kind against a startup
profile and prints them by descending score. Grant programs scoring under the
configured floor are omitted; investors are always listed.

The profile is read from a YAML file:

    industry: fintech
    stage: seed
    description: payments infrastructure for marketplaces
    tech_stack: [go, postgres]
    location: Berlin`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().String("kind", "investors", "catalog to score: investors or grants")
	matchCmd.Flags().String("profile", "", "path to the startup profile YAML (required)")
	matchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(matchCmd)
}

func loadProfile(path string) (types.StartupProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.StartupProfile{}, fmt.Errorf("reading profile: %w", err)
	}
	var profile types.StartupProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return types.StartupProfile{}, fmt.Errorf("parsing profile: %w", err)
	}
	return profile, nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	profilePath, _ := cmd.Flags().GetString("profile")
	if profilePath == "" {
		return fmt.Errorf("--profile is required")
	}
	profile, err := loadProfile(profilePath)
	if err != nil {
		return err
	}

	kindFlag, _ := cmd.Flags().GetString("kind")

	ctx, cancel := commandContext()
	defer cancel()

	e, cleanup, err := buildEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var results []types.MatchResult
	switch kindFlag {
	case "investors":
		results, err = e.MatchInvestors(ctx, profile)
	case "grants":
		results, err = e.MatchGrants(ctx, profile)
	default:
		return fmt.Errorf("unknown kind %q: use investors or grants", kindFlag)
	}
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatMatchOutput(results, jsonOutput)
}

func formatMatchOutput(results []types.MatchResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %s\n", "Rank", "Entity", "Score")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 54))
	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-40s  %d\n", i+1, r.EntityID, r.Score)
	}
	fmt.Fprintf(os.Stdout, "\n%d matches\n", len(results))
	return nil
}
