package termweight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

func TestSignificantTerms_WeightsByFrequencyShare(t *testing.T) {
	m := NewMatcher()
	job := types.JobPosting{RequiredSkills: []string{"Go", "Python"}}

	terms := m.SignificantTerms(job)
	require.Len(t, terms, 3)

	// Equal weights tie-break on text, ascending.
	assert.Equal(t, "go", terms[0].Text)
	assert.Equal(t, "go python", terms[1].Text)
	assert.Equal(t, "python", terms[2].Text)
	for _, term := range terms {
		assert.InDelta(t, 1.0/3.0, term.Weight, 1e-9)
	}
}

func TestSignificantTerms_SkipsStopwords(t *testing.T) {
	m := NewMatcher()
	job := types.JobPosting{Description: "the and of with kubernetes"}

	terms := m.SignificantTerms(job)
	require.Len(t, terms, 1)
	assert.Equal(t, "kubernetes", terms[0].Text)
	assert.InDelta(t, 1.0, terms[0].Weight, 1e-9)
}

func TestSignificantTerms_ForcesRequiredSkillsAtCutoff(t *testing.T) {
	m := NewMatcher()
	job := types.JobPosting{
		Description:    "platform platform platform platform platform platform platform platform platform platform",
		RequiredSkills: []string{"Terraform"},
	}

	terms := m.SignificantTerms(job)

	var forced *Term
	for i := range terms {
		if terms[i].Text == "terraform" {
			forced = &terms[i]
		}
	}
	require.NotNil(t, forced, "required skill must survive the cutoff")
	assert.InDelta(t, DefaultWeightCutoff, forced.Weight, 1e-9)
}

func TestSignificantTerms_EmptyJob(t *testing.T) {
	assert.Empty(t, NewMatcher().SignificantTerms(types.JobPosting{}))
}

func TestMatch_CoverageScore(t *testing.T) {
	m := NewMatcher()
	job := types.JobPosting{RequiredSkills: []string{"Go", "Python"}}

	result := m.Match("I write Go services all day", job)
	assert.InDelta(t, 1.0/3.0, result.Score, 1e-9)
	assert.True(t, result.Passed)
	require.Len(t, result.MatchedTerms, 1)
	assert.Equal(t, "go", result.MatchedTerms[0].Text)
	require.Len(t, result.MissingTerms, 2)
}

func TestMatch_WordBoundaries(t *testing.T) {
	m := NewMatcher()
	job := types.JobPosting{RequiredSkills: []string{"Java"}}

	// "javascript" must not satisfy the term "java".
	result := m.Match("Senior JavaScript engineer", job)
	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.Passed)
}

func TestMatch_EmptyCandidateFails(t *testing.T) {
	m := NewMatcher()
	job := types.JobPosting{RequiredSkills: []string{"Go"}}

	result := m.Match("", job)
	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.Passed)
	assert.Empty(t, result.MatchedTerms)
}

func TestMatch_TermlessJobPassesNeutrally(t *testing.T) {
	result := NewMatcher().Match("anything", types.JobPosting{})
	assert.Equal(t, Result{Score: 1.0, Passed: true}, result)
}

func TestMatch_MissingTermsSortedAndCapped(t *testing.T) {
	m := NewMatcher(WithMissingTermLimit(2))
	job := types.JobPosting{
		Description:    "docker docker docker kubernetes kubernetes terraform",
		RequiredSkills: nil,
	}

	result := m.Match("", job)
	require.Len(t, result.MissingTerms, 2)
	assert.Equal(t, "docker", result.MissingTerms[0].Text)
	assert.GreaterOrEqual(t, result.MissingTerms[0].Weight, result.MissingTerms[1].Weight)
}

func TestMatch_ThresholdOverride(t *testing.T) {
	m := NewMatcher(WithScoreThreshold(0.5))
	job := types.JobPosting{RequiredSkills: []string{"Go", "Python"}}

	result := m.Match("I write Go services", job)
	assert.False(t, result.Passed)
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text, term string
		want       bool
	}{
		{"go developer", "go", true},
		{"golang developer", "go", false},
		{"uses node.js daily", "node.js", true},
		{"machine learning engineer", "machine learning", true},
		{"c++ and c# experience", "c++", true},
		{"", "go", false},
		{"go", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsWord(tt.text, tt.term), "containsWord(%q, %q)", tt.text, tt.term)
	}
}
