// Package keyword implements synonym-aware and fuzzy matching of individual
// skill strings against a job's required skills.
package keyword

import (
	"math"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/jonathan/skillmatch/internal/normalize"
	"github.com/jonathan/skillmatch/internal/synonyms"
	"github.com/jonathan/skillmatch/internal/types"
)

// Confidence levels by match type. Direct beats context beats synonym beats
// fuzzy; a fuzzy hit carries its similarity ratio instead of a fixed value.
const (
	confidenceDirect       = 1.0
	confidenceContext      = 0.95
	confidenceSynonymExact = 0.95
	confidenceSynonym      = 0.85

	// DefaultFuzzyThreshold is the minimum similarity ratio a fuzzy hit needs.
	DefaultFuzzyThreshold = 0.7
)

// Matcher matches candidate skill lists against required skills using the
// direct -> context -> synonym -> fuzzy priority chain. Safe for concurrent
// use; the synonym provider is the only shared state.
type Matcher struct {
	synonyms       synonyms.Provider
	fuzzyThreshold float64
	enableFuzzy    bool
	ratio          strutil.StringMetric
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithFuzzyThreshold overrides the minimum fuzzy similarity ratio.
func WithFuzzyThreshold(threshold float64) Option {
	return func(m *Matcher) { m.fuzzyThreshold = threshold }
}

// WithFuzzyDisabled turns the fuzzy stage off entirely.
func WithFuzzyDisabled() Option {
	return func(m *Matcher) { m.enableFuzzy = false }
}

// NewMatcher creates a Matcher backed by the given synonym provider.
// A nil provider degrades to direct, context and fuzzy matching only.
func NewMatcher(provider synonyms.Provider, opts ...Option) *Matcher {
	if provider == nil {
		provider = synonyms.NewStatic(nil)
	}
	m := &Matcher{
		synonyms:       provider,
		fuzzyThreshold: DefaultFuzzyThreshold,
		enableFuzzy:    true,
		ratio:          metrics.NewLevenshtein(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the verdict for one required skill against the candidate's
// skill list. Stages run in strict priority order and the first success wins;
// context may be "" to skip the context stage.
func (m *Matcher) Match(candidateSkills []string, requiredSkill string, context string) types.MatchResult {
	required := normalize.Skill(requiredSkill)
	if required == "" || len(candidateSkills) == 0 {
		return types.NoMatch()
	}

	// Stage 1: direct.
	for _, candidate := range candidateSkills {
		if normalize.Skill(candidate) == required {
			return types.MatchResult{
				Matched:    true,
				Confidence: confidenceDirect,
				MatchedAs:  candidate,
				MatchType:  types.MatchDirect,
			}
		}
	}

	// Stage 2: context bucket allow-list.
	if allowList := contextAllowList(context, requiredSkill); len(allowList) > 0 {
		allowed := make(map[string]struct{}, len(allowList))
		for _, variant := range allowList {
			allowed[normalize.Skill(variant)] = struct{}{}
		}
		for _, candidate := range candidateSkills {
			if _, ok := allowed[normalize.Skill(candidate)]; ok {
				return types.MatchResult{
					Matched:    true,
					Confidence: confidenceContext,
					MatchedAs:  candidate,
					MatchType:  types.MatchContext,
				}
			}
		}
	}

	// Stage 3: synonym closure.
	if closure := m.synonyms.Table().Closure(requiredSkill); len(closure) > 0 {
		for _, candidate := range candidateSkills {
			normalized := normalize.Skill(candidate)
			if _, ok := closure[normalized]; !ok {
				continue
			}
			confidence := confidenceSynonym
			if normalized == required {
				confidence = confidenceSynonymExact
			}
			return types.MatchResult{
				Matched:    true,
				Confidence: confidence,
				MatchedAs:  candidate,
				MatchType:  types.MatchSynonym,
			}
		}
	}

	// Stage 4: fuzzy similarity, best candidate at or above threshold.
	if m.enableFuzzy {
		best := ""
		bestRatio := 0.0
		for _, candidate := range candidateSkills {
			r := strutil.Similarity(normalize.Skill(candidate), required, m.ratio)
			if r >= m.fuzzyThreshold && r > bestRatio {
				best = candidate
				bestRatio = r
			}
		}
		if best != "" {
			return types.MatchResult{
				Matched:    true,
				Confidence: bestRatio,
				MatchedAs:  best,
				MatchType:  types.MatchFuzzy,
			}
		}
	}

	return types.NoMatch()
}

// MatchMultiple applies Match to every required skill, keyed by the original
// required-skill string.
func (m *Matcher) MatchMultiple(candidateSkills, requiredSkills []string, context string) map[string]types.MatchResult {
	results := make(map[string]types.MatchResult, len(requiredSkills))
	for _, required := range requiredSkills {
		results[required] = m.Match(candidateSkills, required, context)
	}
	return results
}

// MatchPercentage reports matched/total x 100 rounded to 2 decimals.
// An empty result set yields 0.0, never an error.
func MatchPercentage(results map[string]types.MatchResult) float64 {
	if len(results) == 0 {
		return 0.0
	}
	matched := 0
	for _, r := range results {
		if r.Matched {
			matched++
		}
	}
	pct := float64(matched) / float64(len(results)) * 100.0
	return math.Round(pct*100) / 100
}
