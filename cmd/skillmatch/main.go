// Package main provides the skillmatch CLI: unified skill matching and gap
// analysis between candidate profiles and job postings.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillmatch",
	Short: "Skill matching and gap analysis engine",
	Long:  "skillmatch combines synonym-aware keyword matching, term-weighted text matching and semantic embedding similarity into one calibrated match score, and derives skill gap reports with severity, bridgeability and remediation priorities.",
}

var (
	flagConfig  string
	flagVerbose bool
	flagDebug   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config JSON file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print formatted result summaries")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
