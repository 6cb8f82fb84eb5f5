// Copyright Venturely Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venturely/intel-engine/pkg/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Grade a business-plan section against its section spec",
	Long: `Assess grades a text file against the named section spec from the
catalog: topical coverage, word-count fit, professional tone, and investor
appeal. The verdict and concrete improvement suggestions are printed.`,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().String("file", "", "path to the text to grade (required)")
	assessCmd.Flags().String("section", "", "section spec id, e.g. market-analysis (required)")
	assessCmd.Flags().Bool("json", false, "output the assessment as JSON")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	filePath, _ := cmd.Flags().GetString("file")
	sectionID, _ := cmd.Flags().GetString("section")
	if filePath == "" || sectionID == "" {
		return fmt.Errorf("--file and --section are required")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading text: %w", err)
	}

	ctx, cancel := commandContext()
	defer cancel()

	e, cleanup, err := buildEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	assessment, err := e.Assess(ctx, string(data), sectionID)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatAssessmentOutput(assessment, jsonOutput)
}

func formatAssessmentOutput(a types.QualityAssessment, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	fmt.Fprintf(os.Stdout, "Score:           %d  (%s)\n", a.Score, a.Verdict)
	fmt.Fprintf(os.Stdout, "Completeness:    %d\n", a.Completeness)
	fmt.Fprintf(os.Stdout, "Professionalism: %d\n", a.Professionalism)
	fmt.Fprintf(os.Stdout, "Investor appeal: %d\n", a.InvestorAppeal)
	fmt.Fprintf(os.Stdout, "Word count:      %d\n", a.WordCount)
	if len(a.Strengths) > 0 {
		printList("Strengths", a.Strengths)
	}
	if len(a.Improvements) > 0 {
		printList("Improvements", a.Improvements)
	}
	return nil
}
