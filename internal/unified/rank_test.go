package unified

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

func TestRankCandidates_SortsByOverallScore(t *testing.T) {
	c := newTestCombiner(t)
	job := types.JobPosting{RequiredSkills: []string{"Python"}}

	weak := types.CandidateProfile{ID: uuid.New(), Name: "weak"}
	strong := types.CandidateProfile{
		ID: uuid.New(), Name: "strong",
		Skills: []string{"Python"}, ResumeText: "python",
	}
	fuzzy := types.CandidateProfile{
		ID: uuid.New(), Name: "fuzzy",
		Skills: []string{"Pithon"}, ResumeText: "I code",
	}

	ranked := c.RankCandidates(context.Background(), []types.CandidateProfile{weak, strong, fuzzy}, job)
	require.Len(t, ranked, 3)

	assert.Equal(t, "strong", ranked[0].Name)
	assert.Equal(t, strong.ID, ranked[0].CandidateID)
	assert.Equal(t, "fuzzy", ranked[1].Name)
	assert.Equal(t, "weak", ranked[2].Name)
	assert.Greater(t, ranked[0].Result.OverallScore, ranked[1].Result.OverallScore)
	assert.Greater(t, ranked[1].Result.OverallScore, ranked[2].Result.OverallScore)
}

func TestRankCandidates_Empty(t *testing.T) {
	c := newTestCombiner(t)
	ranked := c.RankCandidates(context.Background(), nil, types.JobPosting{})
	assert.Empty(t, ranked)
}

func TestRankCandidates_SingleCandidateCarriesFullResult(t *testing.T) {
	c := newTestCombiner(t)
	job := types.JobPosting{RequiredSkills: []string{"Go", "Rust"}}
	candidate := types.CandidateProfile{ID: uuid.New(), Name: "solo", Skills: []string{"Go"}}

	ranked := c.RankCandidates(context.Background(), []types.CandidateProfile{candidate}, job)
	require.Len(t, ranked, 1)
	assert.Equal(t, []string{"Go"}, ranked[0].Result.MatchedSkills)
	assert.Equal(t, []string{"Rust"}, ranked[0].Result.MissingSkills)
}
