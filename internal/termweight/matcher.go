// Package termweight scores how much of a job posting's important vocabulary
// appears in a candidate's text. Terms are weighted by their frequency share
// in the posting, so coverage of heavy terms moves the score more.
package termweight

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/skillmatch/internal/normalize"
	"github.com/jonathan/skillmatch/internal/types"
)

// Defaults for significance and pass verdicts.
const (
	// DefaultWeightCutoff is the minimum weight share a term needs to count
	// as significant on its own. Explicitly required skills bypass it.
	DefaultWeightCutoff = 0.05
	// DefaultScoreThreshold is the minimum coverage score to pass.
	DefaultScoreThreshold = 0.3
	// DefaultMissingTermLimit caps how many missing terms are reported.
	DefaultMissingTermLimit = 10
)

var reToken = regexp.MustCompile(`[a-z0-9][a-z0-9.+#]*`)

// stopwords excluded from the weighted vocabulary. Required skills are never
// filtered, only free-text terms.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true, "be": true,
	"as": true, "from": true, "this": true, "that": true, "will": true,
	"you": true, "we": true, "our": true, "your": true, "have": true,
	"has": true, "it": true, "its": true, "their": true, "they": true,
}

// Term is one weighted vocabulary entry.
type Term struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// Result holds the term-weighted coverage verdict for one candidate text.
type Result struct {
	Score        float64 `json:"score"`
	Passed       bool    `json:"passed"`
	MatchedTerms []Term  `json:"matched_terms,omitempty"`
	MissingTerms []Term  `json:"missing_terms,omitempty"`
}

// Matcher extracts an importance-weighted vocabulary from a job posting and
// checks each significant term against the candidate text. Stateless and
// safe for concurrent use.
type Matcher struct {
	weightCutoff     float64
	scoreThreshold   float64
	missingTermLimit int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithWeightCutoff overrides the significance cutoff.
func WithWeightCutoff(cutoff float64) Option {
	return func(m *Matcher) { m.weightCutoff = cutoff }
}

// WithScoreThreshold overrides the pass threshold.
func WithScoreThreshold(threshold float64) Option {
	return func(m *Matcher) { m.scoreThreshold = threshold }
}

// WithMissingTermLimit overrides the missing-term display cap.
func WithMissingTermLimit(limit int) Option {
	return func(m *Matcher) { m.missingTermLimit = limit }
}

// NewMatcher creates a Matcher with the default cutoffs.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		weightCutoff:     DefaultWeightCutoff,
		scoreThreshold:   DefaultScoreThreshold,
		missingTermLimit: DefaultMissingTermLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match extracts the significant terms of the job and scores their coverage
// in the candidate text. An empty or termless job yields a passing 1.0.
func (m *Matcher) Match(candidateText string, job types.JobPosting) Result {
	significant := m.SignificantTerms(job)
	if len(significant) == 0 {
		return Result{Score: 1.0, Passed: true}
	}

	haystack := normalize.Text(candidateText)

	var matched, missing []Term
	matchedWeight := 0.0
	totalWeight := 0.0
	for _, term := range significant {
		totalWeight += term.Weight
		if containsWord(haystack, term.Text) {
			matchedWeight += term.Weight
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = matchedWeight / totalWeight
	}

	// Missing terms come back heaviest first, capped for display.
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Weight > missing[j].Weight
	})
	if m.missingTermLimit > 0 && len(missing) > m.missingTermLimit {
		missing = missing[:m.missingTermLimit]
	}

	return Result{
		Score:        score,
		Passed:       score >= m.scoreThreshold,
		MatchedTerms: matched,
		MissingTerms: missing,
	}
}

// SignificantTerms builds the weighted unigram+bigram vocabulary of the job
// posting and filters it to the significant set: terms above the cutoff plus
// every explicitly required skill regardless of weight.
func (m *Matcher) SignificantTerms(job types.JobPosting) []Term {
	source := strings.Join([]string{job.Title, job.Description, strings.Join(job.RequiredSkills, " ")}, " ")
	tokens := tokenize(source)

	counts := make(map[string]int)
	total := 0
	for i, tok := range tokens {
		if stopwords[tok] {
			continue
		}
		counts[tok]++
		total++
		if i+1 < len(tokens) && !stopwords[tokens[i+1]] {
			counts[tok+" "+tokens[i+1]]++
			total++
		}
	}
	if total == 0 && len(job.RequiredSkills) == 0 {
		return nil
	}

	weights := make(map[string]float64, len(counts))
	for term, count := range counts {
		weights[term] = float64(count) / float64(total)
	}

	significant := make(map[string]float64)
	for term, weight := range weights {
		if weight > m.weightCutoff {
			significant[term] = weight
		}
	}

	// Required skills are force-included; ones the vocabulary missed (or
	// ranked below the cutoff) enter at the cutoff weight so the coverage
	// denominator stays meaningful.
	for _, skill := range job.RequiredSkills {
		term := normalize.Skill(skill)
		if term == "" {
			continue
		}
		if weight, ok := weights[term]; ok && weight > m.weightCutoff {
			significant[term] = weight
			continue
		}
		if _, ok := significant[term]; !ok {
			significant[term] = m.weightCutoff
		}
	}

	terms := make([]Term, 0, len(significant))
	for text, weight := range significant {
		terms = append(terms, Term{Text: text, Weight: weight})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		return terms[i].Text < terms[j].Text
	})
	return terms
}

func tokenize(s string) []string {
	return reToken.FindAllString(strings.ToLower(s), -1)
}

// containsWord reports whether term occurs in text on word boundaries,
// matching multi-word terms literally.
func containsWord(text, term string) bool {
	if term == "" {
		return false
	}
	idx := 0
	for {
		i := strings.Index(text[idx:], term)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(term)
		beforeOK := start == 0 || isBoundary(text[start-1])
		afterOK := end == len(text) || isBoundary(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isBoundary(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return false
	case b >= '0' && b <= '9':
		return false
	}
	return true
}
