package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/jonathan/skillmatch/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a batch of candidates against a job posting",
	Long:  "Matches every candidate in the batch against the job posting in parallel and writes the candidates sorted by overall score descending.",
	RunE:  runRank,
}

var (
	rankCandidates string
	rankJob        string
	rankOutput     string
)

func init() {
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to input JSON file holding an array of CandidateProfile (required)")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to input JobPosting JSON file (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranked candidates JSON file (required)")

	if err := rankCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var candidates []types.CandidateProfile
	if err := readJSONFile(rankCandidates, &candidates); err != nil {
		return err
	}
	var job types.JobPosting
	if err := readJSONFile(rankJob, &job); err != nil {
		return err
	}

	combiner, err := buildCombiner(cfg, log)
	if err != nil {
		return err
	}

	ranked := combiner.RankCandidates(cmd.Context(), candidates, job)

	if err := writeJSONFile(rankOutput, ranked); err != nil {
		return err
	}

	if flagVerbose {
		observability.NewPrinter(os.Stdout).PrintRankedCandidates(ranked)
	}

	return nil
}
