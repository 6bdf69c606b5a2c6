package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/jonathan/skillmatch/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match one candidate against a job posting",
	Long:  "Runs the keyword, term-weighted and semantic matchers over a candidate profile and a job posting, and writes the fused UnifiedMatchResult JSON.",
	RunE:  runMatch,
}

var (
	matchCandidate string
	matchJob       string
	matchOutput    string
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to input JobPosting JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output UnifiedMatchResult JSON file (required)")

	if err := matchCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var candidate types.CandidateProfile
	if err := readJSONFile(matchCandidate, &candidate); err != nil {
		return err
	}
	var job types.JobPosting
	if err := readJSONFile(matchJob, &job); err != nil {
		return err
	}

	combiner, err := buildCombiner(cfg, log)
	if err != nil {
		return err
	}

	result := combiner.Match(cmd.Context(), candidate, job)

	if err := writeJSONFile(matchOutput, result); err != nil {
		return err
	}

	if flagVerbose {
		observability.NewPrinter(os.Stdout).PrintUnifiedResult(&result)
	}

	return nil
}
