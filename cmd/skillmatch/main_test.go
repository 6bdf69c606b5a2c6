package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readResult(t *testing.T, path string, out any) {
	t.Helper()
	require.NoError(t, readJSONFile(path, out))
}

// execute runs the root command in-process with a clean flag state.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	flagConfig = ""
	flagVerbose = false
	flagDebug = false
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestMatchCommand(t *testing.T) {
	dir := t.TempDir()
	candidate := writeFile(t, dir, "candidate.json", `{
		"name": "Ada",
		"skills": ["ReactJS", "Python", "PostgreSQL"],
		"resume_text": "react python sql developer"
	}`)
	job := writeFile(t, dir, "job.json", `{
		"title": "Backend Engineer",
		"required_skills": ["React", "Python", "SQL"],
		"context": "web_framework"
	}`)
	out := filepath.Join(dir, "result.json")

	require.NoError(t, execute(t, "match", "-c", candidate, "-j", job, "-o", out))

	var result types.UnifiedMatchResult
	readResult(t, out, &result)
	assert.InDelta(t, 1.0, result.KeywordScore, 1e-9)
	assert.Equal(t, []string{"React", "Python", "SQL"}, result.MatchedSkills)
	assert.Equal(t, "disabled", result.SemanticMethod)
	assert.True(t, result.OverallPassed)
	assert.Equal(t, types.RecommendExcellent, result.Recommendation)
}

func TestMatchCommand_MissingFlags(t *testing.T) {
	assert.Error(t, execute(t, "match"))
}

func TestMatchCommand_BadInputFile(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.json", `{"required_skills": []}`)

	err := execute(t, "match",
		"-c", filepath.Join(dir, "absent.json"),
		"-j", job,
		"-o", filepath.Join(dir, "out.json"))
	assert.Error(t, err)
}

func TestGapCommand(t *testing.T) {
	dir := t.TempDir()
	candidate := writeFile(t, dir, "candidate.json", `{
		"skills": ["JavaScript", "React", "HTML", "CSS"],
		"resume_text": ""
	}`)
	job := writeFile(t, dir, "job.json", `{
		"title": "Platform Engineer",
		"required_skills": ["TypeScript", "AWS", "Docker", "GraphQL"]
	}`)
	out := filepath.Join(dir, "gaps.json")

	require.NoError(t, execute(t, "gap", "-c", candidate, "-j", job, "-o", out))

	var result types.GapResult
	readResult(t, out, &result)
	assert.Equal(t, 100.0, result.GapPercentage)
	assert.Equal(t, types.SeverityCritical, result.GapSeverity)
	assert.Equal(t, []string{"TypeScript", "AWS", "Docker", "GraphQL"}, result.MissingSkills)
	assert.Equal(t, []string{"TypeScript", "GraphQL", "AWS", "Docker"}, result.PriorityOrdering)
	assert.Equal(t, 320, result.EstimatedTimeToBridge)
}

func TestGapCommand_WithLevels(t *testing.T) {
	dir := t.TempDir()
	candidate := writeFile(t, dir, "candidate.json", `{
		"skills": ["Python"],
		"resume_text": "python",
		"skill_levels": {"Python": "beginner"}
	}`)
	job := writeFile(t, dir, "job.json", `{
		"required_skills": ["Python"],
		"required_levels": {"Python": "advanced"}
	}`)
	out := filepath.Join(dir, "gaps.json")

	require.NoError(t, execute(t, "gap", "-c", candidate, "-j", job, "-o", out))

	var result types.GapResult
	readResult(t, out, &result)
	assert.Equal(t, []string{"Python"}, result.PartialMatchSkills)
	assert.Equal(t, types.StatusPartial, result.MissingSkillDetails["Python"].Status)
}

func TestRankCommand(t *testing.T) {
	dir := t.TempDir()
	candidates := writeFile(t, dir, "candidates.json", `[
		{"name": "none", "skills": [], "resume_text": ""},
		{"name": "full", "skills": ["Python"], "resume_text": "python"}
	]`)
	job := writeFile(t, dir, "job.json", `{"required_skills": ["Python"]}`)
	out := filepath.Join(dir, "ranked.json")

	require.NoError(t, execute(t, "rank", "-c", candidates, "-j", job, "-o", out))

	var ranked []types.RankedCandidate
	readResult(t, out, &ranked)
	require.Len(t, ranked, 2)
	assert.Equal(t, "full", ranked[0].Name)
	assert.Equal(t, "none", ranked[1].Name)
	assert.Greater(t, ranked[0].Result.OverallScore, ranked[1].Result.OverallScore)
}

func TestMatchCommand_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.json", `{"keyword_threshold": 80}`)
	candidate := writeFile(t, dir, "candidate.json", `{"skills": ["Python"], "resume_text": ""}`)
	job := writeFile(t, dir, "job.json", `{"required_skills": ["Python", "Go"]}`)
	out := filepath.Join(dir, "result.json")

	require.NoError(t, execute(t, "match", "--config", cfgPath, "-c", candidate, "-j", job, "-o", out))

	var result types.UnifiedMatchResult
	readResult(t, out, &result)
	// 50% keyword coverage fails the raised 80% gate.
	assert.False(t, result.KeywordPassed)
}

func TestWriteJSONFile_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "out.json")

	require.NoError(t, writeJSONFile(path, map[string]int{"n": 1}))

	var decoded map[string]int
	readResult(t, path, &decoded)
	assert.Equal(t, 1, decoded["n"])
}
