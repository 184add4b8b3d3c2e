package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume text file offline",
	Long:  "Extract skills, current role, and years of experience from a resume text file without starting the server. Prints the analysis as JSON to stdout.",
	RunE:  runAnalyze,
}

var analyzeInputFile string

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume text file (required)")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalogs: %w", err)
	}

	text := string(content)
	extractor := extract.NewExtractor(cat.Skills())

	analysis := types.ResumeAnalysis{
		Skills:          extractor.Extract(text),
		CurrentRole:     extract.GuessRole(text),
		ExperienceYears: extract.ExperienceYears(text),
	}

	jsonBytes, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
