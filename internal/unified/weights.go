// Package unified fuses the keyword, term-weighted and semantic matcher
// signals into one calibrated verdict per (resume, job) pair.
package unified

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default fusion weights before normalization.
const (
	DefaultKeywordWeight  = 0.4
	DefaultTermWeight     = 0.3
	DefaultSemanticWeight = 0.3
)

var validate = validator.New()

// Weights is the score-fusion configuration, validated at construction so an
// invalid configuration fails fast instead of silently skewing every match.
// After NewWeights the three components sum to 1.
type Weights struct {
	Keyword  float64 `json:"keyword" validate:"gte=0"`
	Term     float64 `json:"term" validate:"gte=0"`
	Semantic float64 `json:"semantic" validate:"gte=0"`
}

// NewWeights validates and normalizes fusion weights.
func NewWeights(keyword, term, semantic float64) (Weights, error) {
	w := Weights{Keyword: keyword, Term: term, Semantic: semantic}
	if err := validate.Struct(w); err != nil {
		return Weights{}, fmt.Errorf("invalid fusion weights: %w", err)
	}

	sum := w.Keyword + w.Term + w.Semantic
	if sum <= 0 {
		return Weights{}, fmt.Errorf("fusion weights must have a positive sum, got %v", sum)
	}

	w.Keyword /= sum
	w.Term /= sum
	w.Semantic /= sum
	return w, nil
}

// DefaultWeights returns the normalized default fusion weights.
func DefaultWeights() Weights {
	w, err := NewWeights(DefaultKeywordWeight, DefaultTermWeight, DefaultSemanticWeight)
	if err != nil {
		panic(fmt.Sprintf("default weights must be valid: %v", err))
	}
	return w
}
