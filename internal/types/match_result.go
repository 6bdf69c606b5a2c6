// Package types provides type definitions for structured data used throughout the skill matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchType identifies which matching stage produced a verdict
type MatchType string

// Match type constants, ordered by the priority in which stages are attempted
const (
	// MatchDirect means a candidate skill normalized equal to the required skill
	MatchDirect MatchType = "direct"
	// MatchContext means a context-bucket rule mapped a candidate variant to the required skill
	MatchContext MatchType = "context"
	// MatchSynonym means the candidate skill fell inside the synonym closure of the required skill
	MatchSynonym MatchType = "synonym"
	// MatchFuzzy means a string-similarity ratio at or above the configured threshold
	MatchFuzzy MatchType = "fuzzy"
	// MatchNone means no stage produced a verdict
	MatchNone MatchType = "none"
)

// MatchResult is the verdict for a single required skill.
// Invariant: Matched == false implies Confidence == 0 and MatchedAs == "".
type MatchResult struct {
	Matched    bool      `json:"matched"`
	Confidence float64   `json:"confidence"`
	MatchedAs  string    `json:"matched_as,omitempty"` // original candidate string that satisfied the requirement
	MatchType  MatchType `json:"match_type"`
}

// NoMatch returns the canonical negative verdict.
func NoMatch() MatchResult {
	return MatchResult{Matched: false, Confidence: 0.0, MatchType: MatchNone}
}
