package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillmatch/internal/synonyms"
	"github.com/jonathan/skillmatch/internal/types"
)

func newTestMatcher(t *testing.T, opts ...Option) *Matcher {
	t.Helper()
	return NewMatcher(synonyms.NewDefault(), opts...)
}

func TestMatch_Direct(t *testing.T) {
	m := newTestMatcher(t)

	result := m.Match([]string{"Python", "Docker"}, "python", "")
	assert.True(t, result.Matched)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, "Python", result.MatchedAs)
	assert.Equal(t, types.MatchDirect, result.MatchType)
}

func TestMatch_DirectIgnoresCaseAndWhitespace(t *testing.T) {
	m := newTestMatcher(t)

	result := m.Match([]string{"  NODE.JS "}, "node.js", "")
	assert.True(t, result.Matched)
	assert.Equal(t, types.MatchDirect, result.MatchType)
}

func TestMatch_Context(t *testing.T) {
	m := newTestMatcher(t)

	result := m.Match([]string{"ReactJS"}, "React", "web_framework")
	assert.True(t, result.Matched)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, "ReactJS", result.MatchedAs)
	assert.Equal(t, types.MatchContext, result.MatchType)
}

func TestMatch_ContextBucketIsCaseInsensitive(t *testing.T) {
	m := newTestMatcher(t)

	result := m.Match([]string{"Postgres"}, "PostgreSQL", " Database ")
	assert.Equal(t, types.MatchContext, result.MatchType)
}

func TestMatch_ContextExcludesCrossDomainVariants(t *testing.T) {
	m := newTestMatcher(t)

	// "React Native" is deliberately not in the web-framework allow-list;
	// the fuzzy ratio against "react" sits below the default threshold too.
	result := m.Match([]string{"React Native"}, "React", "web_framework")
	assert.False(t, result.Matched)
	assert.Equal(t, types.MatchNone, result.MatchType)
}

func TestMatch_UnknownContextFallsThrough(t *testing.T) {
	m := newTestMatcher(t)

	result := m.Match([]string{"golang"}, "Go", "astrology")
	assert.Equal(t, types.MatchSynonym, result.MatchType)
	assert.Equal(t, 0.85, result.Confidence)
}

func TestMatch_SynonymSymmetricUnderMembership(t *testing.T) {
	m := newTestMatcher(t)

	result := m.Match([]string{"PostgreSQL"}, "SQL", "")
	assert.True(t, result.Matched)
	assert.Equal(t, types.MatchSynonym, result.MatchType)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, "PostgreSQL", result.MatchedAs)
}

func TestMatch_Fuzzy(t *testing.T) {
	m := newTestMatcher(t)

	result := m.Match([]string{"Pithon"}, "python", "")
	require.True(t, result.Matched)
	assert.Equal(t, types.MatchFuzzy, result.MatchType)
	assert.GreaterOrEqual(t, result.Confidence, DefaultFuzzyThreshold)
	assert.InDelta(t, 0.8333, result.Confidence, 0.001)
	assert.Equal(t, "Pithon", result.MatchedAs)
}

func TestMatch_FuzzyBelowThreshold(t *testing.T) {
	m := newTestMatcher(t)

	// javascript/typescript similarity is 0.6, under the 0.7 default.
	result := m.Match([]string{"JavaScript"}, "TypeScript", "")
	assert.Equal(t, types.NoMatch(), result)
}

func TestMatch_FuzzyThresholdOverride(t *testing.T) {
	m := newTestMatcher(t, WithFuzzyThreshold(0.5))

	result := m.Match([]string{"JavaScript"}, "TypeScript", "")
	assert.Equal(t, types.MatchFuzzy, result.MatchType)
	assert.InDelta(t, 0.6, result.Confidence, 0.001)
}

func TestMatch_FuzzyDisabled(t *testing.T) {
	m := newTestMatcher(t, WithFuzzyDisabled())

	result := m.Match([]string{"Pithon"}, "python", "")
	assert.Equal(t, types.NoMatch(), result)
}

func TestMatch_PriorityDirectBeatsSynonym(t *testing.T) {
	m := newTestMatcher(t)

	// "golang" would hit the synonym stage, but the direct hit on "Go" wins.
	result := m.Match([]string{"golang", "Go"}, "Go", "")
	assert.Equal(t, types.MatchDirect, result.MatchType)
	assert.Equal(t, "Go", result.MatchedAs)
}

func TestMatch_NoMatchInvariant(t *testing.T) {
	m := newTestMatcher(t)

	result := m.Match([]string{"Haskell"}, "COBOL", "")
	assert.False(t, result.Matched)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.MatchedAs)
	assert.Equal(t, types.MatchNone, result.MatchType)
}

func TestMatch_EmptyInputs(t *testing.T) {
	m := newTestMatcher(t)

	assert.Equal(t, types.NoMatch(), m.Match(nil, "python", ""))
	assert.Equal(t, types.NoMatch(), m.Match([]string{"python"}, "  ", ""))
}

func TestMatch_NilProviderStillMatchesDirect(t *testing.T) {
	m := NewMatcher(nil)

	result := m.Match([]string{"Python"}, "python", "")
	assert.Equal(t, types.MatchDirect, result.MatchType)

	result = m.Match([]string{"golang"}, "Go", "")
	assert.False(t, result.Matched)
}

func TestMatchMultiple_MixedMatchTypes(t *testing.T) {
	m := newTestMatcher(t)

	candidates := []string{"ReactJS", "Python", "PostgreSQL"}
	required := []string{"React", "Python", "SQL"}

	results := m.MatchMultiple(candidates, required, "web_framework")
	require.Len(t, results, 3)
	assert.Equal(t, types.MatchContext, results["React"].MatchType)
	assert.Equal(t, types.MatchDirect, results["Python"].MatchType)
	assert.Equal(t, types.MatchSynonym, results["SQL"].MatchType)
	assert.Equal(t, 100.0, MatchPercentage(results))
}

func TestMatchPercentage(t *testing.T) {
	results := map[string]types.MatchResult{
		"a": {Matched: true, Confidence: 1.0},
		"b": {Matched: false},
		"c": {Matched: true, Confidence: 0.85},
	}
	assert.Equal(t, 66.67, MatchPercentage(results))
}

func TestMatchPercentage_Empty(t *testing.T) {
	assert.Equal(t, 0.0, MatchPercentage(nil))
	assert.Equal(t, 0.0, MatchPercentage(map[string]types.MatchResult{}))
}
