// Package main provides the entry point for the Career Advisor HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_advisor",
	Short: "Career Advisor HTTP API Server",
	Long:  "Career Advisor analyzes resumes, recommends tech roles, and builds personalized three-phase learning roadmaps backed by live job market data via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
