package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/jonathan/skillmatch/internal/types"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Analyze a candidate's skill gaps against a job posting",
	Long:  "Derives missing and partially matched skills, gap severity, bridgeability, an hour estimate to close the gaps and a remediation priority ordering, and writes the GapResult JSON.",
	RunE:  runGap,
}

var (
	gapCandidate string
	gapJob       string
	gapOutput    string
)

func init() {
	gapCmd.Flags().StringVarP(&gapCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	gapCmd.Flags().StringVarP(&gapJob, "job", "j", "", "Path to input JobPosting JSON file (required)")
	gapCmd.Flags().StringVarP(&gapOutput, "out", "o", "", "Path to output GapResult JSON file (required)")

	if err := gapCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := gapCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := gapCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(gapCmd)
}

func runGap(_ *cobra.Command, _ []string) error {
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
	if err := readJSONFile(gapCandidate, &candidate); err != nil {
		return err
	}
	var job types.JobPosting
	if err := readJSONFile(gapJob, &job); err != nil {
		return err
	}

	analyzer := buildAnalyzer(cfg, log)
	result := analyzer.Analyze(candidate.Skills, job.RequiredSkills, job.RequiredLevels, candidate.SkillLevels)

	if err := writeJSONFile(gapOutput, result); err != nil {
		return err
	}

	if flagVerbose {
		observability.NewPrinter(os.Stdout).PrintGapResult(&result)
	}

	return nil
}
