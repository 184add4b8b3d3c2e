package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jonathan/career-advisor/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis, market trends, roadmap generation, and career guidance.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// The LLM and job-search keys are optional. Without them the server
	// falls back to catalog-driven responses.
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		log.Printf("GEMINI_API_KEY not set, LLM features will use rule-based fallbacks")
	}
	jsearchAPIKey := os.Getenv("JSEARCH_API_KEY")
	if jsearchAPIKey == "" {
		log.Printf("JSEARCH_API_KEY not set, market trends will use catalog fallback data")
	}

	cfg := server.Config{
		Port:          servePort,
		DatabaseURL:   databaseURL,
		GeminiAPIKey:  geminiAPIKey,
		JSearchAPIKey: jsearchAPIKey,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
