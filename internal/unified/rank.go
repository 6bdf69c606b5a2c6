package unified

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillmatch/internal/types"
)

// RankCandidates matches every candidate against the job and returns them
// sorted by overall score descending; ties keep no particular order. Each
// candidate's computation reads only shared immutable caches, so the batch
// runs in parallel.
func (c *Combiner) RankCandidates(ctx context.Context, candidates []types.CandidateProfile, job types.JobPosting) []types.RankedCandidate {
	ranked := make([]types.RankedCandidate, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			ranked[i] = types.RankedCandidate{
				CandidateID: candidate.ID,
				Name:        candidate.Name,
				Result:      c.Match(gctx, candidate, job),
			}
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Result.OverallScore > ranked[j].Result.OverallScore
	})
	return ranked
}
