package unified

import (
	"context"

	"github.com/jonathan/skillmatch/internal/keyword"
	"github.com/jonathan/skillmatch/internal/semantic"
	"github.com/jonathan/skillmatch/internal/termweight"
	"github.com/jonathan/skillmatch/internal/types"
)

// Pass thresholds for the aggregate and per-signal verdicts.
const (
	// DefaultOverallThreshold is the minimum fused score to pass overall.
	DefaultOverallThreshold = 0.5
	// DefaultKeywordThreshold is the minimum keyword match percentage to pass.
	DefaultKeywordThreshold = 30.0
)

// Recommendation tier cutoffs on the fused score.
const (
	tierExcellent = 0.8
	tierGood      = 0.6
	tierMaybe     = 0.4
)

// Combiner runs the three matchers over the same (resume, job) pair and
// fuses their scores. Pure and safe for concurrent use; the only shared
// state lives behind the injected synonym and embedding providers.
type Combiner struct {
	keyword          *keyword.Matcher
	term             *termweight.Matcher
	semantic         *semantic.Matcher
	weights          Weights
	overallThreshold float64
	keywordThreshold float64
}

// Option configures a Combiner.
type Option func(*Combiner)

// WithWeights overrides the fusion weights.
func WithWeights(w Weights) Option {
	return func(c *Combiner) { c.weights = w }
}

// WithOverallThreshold overrides the fused pass threshold.
func WithOverallThreshold(threshold float64) Option {
	return func(c *Combiner) { c.overallThreshold = threshold }
}

// WithKeywordThreshold overrides the keyword pass percentage.
func WithKeywordThreshold(threshold float64) Option {
	return func(c *Combiner) { c.keywordThreshold = threshold }
}

// NewCombiner wires the three matchers together. Any nil matcher is replaced
// with its default construction (the semantic default is the disabled
// pass-through).
func NewCombiner(kw *keyword.Matcher, tw *termweight.Matcher, sm *semantic.Matcher, opts ...Option) *Combiner {
	if kw == nil {
		kw = keyword.NewMatcher(nil)
	}
	if tw == nil {
		tw = termweight.NewMatcher()
	}
	if sm == nil {
		sm = semantic.NewMatcher(nil)
	}
	c := &Combiner{
		keyword:          kw,
		term:             tw,
		semantic:         sm,
		weights:          DefaultWeights(),
		overallThreshold: DefaultOverallThreshold,
		keywordThreshold: DefaultKeywordThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KeywordMatcher exposes the underlying keyword matcher so the gap analyzer
// can reuse the exact same verdicts.
func (c *Combiner) KeywordMatcher() *keyword.Matcher {
	return c.keyword
}

// Match runs all three matchers and fuses their scores into a single
// immutable result. A failure inside any matcher surfaces as that matcher's
// failed result shape so the remaining signals still fuse.
func (c *Combiner) Match(ctx context.Context, candidate types.CandidateProfile, job types.JobPosting) types.UnifiedMatchResult {
	kwResults := c.matchKeywords(candidate.Skills, job)
	kwPct := keyword.MatchPercentage(kwResults)
	kwScore := kwPct / 100.0
	kwPassed := kwPct >= c.keywordThreshold

	matched, missing := partitionSkills(job.RequiredSkills, kwResults)

	twResult := c.matchTerms(candidate.ResumeText, job)

	smResult := c.semantic.Match(ctx, candidate.ResumeText, job)

	overall := c.weights.Keyword*kwScore + c.weights.Term*twResult.Score + c.weights.Semantic*smResult.Score

	missingTerms := make([]string, 0, len(twResult.MissingTerms))
	for _, term := range twResult.MissingTerms {
		missingTerms = append(missingTerms, term.Text)
	}

	result := types.UnifiedMatchResult{
		KeywordScore:   kwScore,
		KeywordPassed:  kwPassed,
		KeywordMatches: kwResults,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		TFIDFScore:     twResult.Score,
		TFIDFPassed:    twResult.Passed,
		MissingTerms:   missingTerms,
		SemanticScore:  smResult.Score,
		SemanticPassed: smResult.Passed,
		SemanticMethod: smResult.Method,
		OverallScore:   overall,
		OverallPassed:  overall >= c.overallThreshold,
	}
	result.Recommendation = recommend(result)
	return result
}

// matchKeywords isolates the keyword matcher behind a recover boundary:
// an unexpected panic becomes an all-missing verdict instead of aborting
// the batch.
func (c *Combiner) matchKeywords(candidateSkills []string, job types.JobPosting) (results map[string]types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			results = make(map[string]types.MatchResult, len(job.RequiredSkills))
			for _, skill := range job.RequiredSkills {
				results[skill] = types.NoMatch()
			}
		}
	}()
	return c.keyword.MatchMultiple(candidateSkills, job.RequiredSkills, job.Context)
}

// matchTerms isolates the term-weighted matcher the same way.
func (c *Combiner) matchTerms(candidateText string, job types.JobPosting) (result termweight.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = termweight.Result{Score: 0.0, Passed: false}
		}
	}()
	return c.term.Match(candidateText, job)
}

// partitionSkills splits required skills into matched and missing lists,
// preserving the job's original skill order.
func partitionSkills(requiredSkills []string, results map[string]types.MatchResult) (matched, missing []string) {
	matched = make([]string, 0, len(requiredSkills))
	missing = make([]string, 0)
	for _, skill := range requiredSkills {
		if results[skill].Matched {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

// recommend derives the qualitative tier, evaluated strongest first.
func recommend(r types.UnifiedMatchResult) types.Recommendation {
	switch {
	case r.OverallScore >= tierExcellent && r.KeywordPassed:
		return types.RecommendExcellent
	case r.OverallScore >= tierGood && r.KeywordPassed && r.TFIDFPassed:
		return types.RecommendGood
	case r.OverallScore >= tierMaybe:
		return types.RecommendMaybe
	default:
		return types.RecommendPoor
	}
}
