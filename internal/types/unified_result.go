//nolint:revive // types is a standard Go package name pattern
package types

// Recommendation is a qualitative hiring-fit tier derived from the fused score
type Recommendation string

// Recommendation tiers, strongest first
const (
	RecommendExcellent Recommendation = "excellent"
	RecommendGood      Recommendation = "good"
	RecommendMaybe     Recommendation = "maybe"
	RecommendPoor      Recommendation = "poor"
)

// UnifiedMatchResult aggregates the three matcher signals plus the fused
// overall verdict for one (resume, job) pair. Immutable after construction.
type UnifiedMatchResult struct {
	KeywordScore    float64                `json:"keyword_score"` // match percentage / 100
	KeywordPassed   bool                   `json:"keyword_passed"`
	KeywordMatches  map[string]MatchResult `json:"keyword_matches"`
	MatchedSkills   []string               `json:"matched_skills"`
	MissingSkills   []string               `json:"missing_skills"`
	TFIDFScore      float64                `json:"tfidf_score"`
	TFIDFPassed     bool                   `json:"tfidf_passed"`
	MissingTerms    []string               `json:"missing_terms,omitempty"`
	SemanticScore   float64                `json:"semantic_score"`
	SemanticPassed  bool                   `json:"semantic_passed"`
	SemanticMethod  string                 `json:"semantic_method"`
	OverallScore    float64                `json:"overall_score"`
	OverallPassed   bool                   `json:"overall_passed"`
	Recommendation  Recommendation         `json:"recommendation"`
}
