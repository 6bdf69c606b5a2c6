package semantic

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/jonathan/skillmatch/internal/types"
)

// ErrUnavailable signals that no embedding backend is configured.
var ErrUnavailable = errors.New("embedding backend unavailable")

// Method values reported in Result.
const (
	MethodEmbedding = "embedding"
	MethodDisabled  = "disabled"
	MethodError     = "error"
)

// DefaultScoreThreshold is the minimum normalized similarity to pass.
const DefaultScoreThreshold = 0.5

// Result holds the semantic similarity verdict for one (resume, job) pair.
// Score is the cosine similarity normalized from [-1,1] to [0,1]; Similarity
// keeps the raw cosine for diagnostics.
type Result struct {
	Score      float64 `json:"score"`
	Similarity float64 `json:"similarity"`
	Passed     bool    `json:"passed"`
	Method     string  `json:"method"`
}

// Matcher embeds both texts and compares them. When the provider reports no
// capability the matcher passes through neutrally: absence of the semantic
// layer must degrade the combiner toward the other signals, never inject a
// false negative.
type Matcher struct {
	provider  EmbeddingProvider
	threshold float64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithScoreThreshold overrides the pass threshold.
func WithScoreThreshold(threshold float64) Option {
	return func(m *Matcher) { m.threshold = threshold }
}

// NewMatcher creates a Matcher over the given provider. A nil provider is
// treated as Disabled.
func NewMatcher(provider EmbeddingProvider, opts ...Option) *Matcher {
	if provider == nil {
		provider = NewDisabled()
	}
	m := &Matcher{provider: provider, threshold: DefaultScoreThreshold}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match embeds the candidate text and the job text and scores their cosine
// similarity. Encoding failures surface as a failed result, not an error.
func (m *Matcher) Match(ctx context.Context, candidateText string, job types.JobPosting) Result {
	if !m.provider.Available() {
		return Result{Score: 1.0, Similarity: 0.0, Passed: true, Method: MethodDisabled}
	}

	jobText := strings.Join([]string{job.Title, job.Description, strings.Join(job.RequiredSkills, " ")}, " ")

	candidateVec, err := m.provider.Embed(ctx, candidateText)
	if err != nil {
		return Result{Score: 0.0, Passed: false, Method: MethodError}
	}
	jobVec, err := m.provider.Embed(ctx, jobText)
	if err != nil {
		return Result{Score: 0.0, Passed: false, Method: MethodError}
	}

	cos, err := cosineSimilarity(candidateVec, jobVec)
	if err != nil {
		return Result{Score: 0.0, Passed: false, Method: MethodError}
	}

	score := (cos + 1.0) / 2.0
	return Result{
		Score:      score,
		Similarity: cos,
		Passed:     score >= m.threshold,
		Method:     MethodEmbedding,
	}
}

// cosineSimilarity computes the cosine of the angle between two vectors of
// equal dimension.
func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, errors.New("vectors must be non-empty and of equal dimension")
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, errors.New("cannot compare zero-magnitude vectors")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
