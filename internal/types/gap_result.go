//nolint:revive // types is a standard Go package name pattern
package types

// GapSeverity is a four-level ordinal classification of how much of a job's
// requirements a candidate fails to meet
type GapSeverity string

// Severity levels, mildest first
const (
	SeverityNone     GapSeverity = "none"
	SeverityMinimal  GapSeverity = "minimal"
	SeverityModerate GapSeverity = "moderate"
	SeverityCritical GapSeverity = "critical"
)

// SkillStatus describes how a required skill fared in gap analysis
type SkillStatus string

// Skill status values
const (
	StatusMissing SkillStatus = "missing"
	StatusPartial SkillStatus = "partial"
)

// SkillCategory groups skills for gap prioritization
type SkillCategory string

// Category buckets, tested in this fixed order with "other" as fallback
const (
	CategoryProgrammingLanguage SkillCategory = "programming_language"
	CategoryWebFramework        SkillCategory = "web_framework"
	CategoryDatabase            SkillCategory = "database"
	CategoryCloudDevOps         SkillCategory = "cloud_devops"
	CategoryOther               SkillCategory = "other"
)

// MissingSkillDetail carries per-skill remediation metadata for every
// missing or partially matched skill.
type MissingSkillDetail struct {
	Status        SkillStatus   `json:"status"`
	RequiredLevel string        `json:"required_level"`
	Importance    string        `json:"importance"`
	Category      SkillCategory `json:"category"`
}

// GapResult is the structured output of skill gap analysis. Created fresh on
// every call and never mutated; callers persist a snapshot if history is needed.
type GapResult struct {
	MatchedSkills         []string                      `json:"matched_skills"`
	MissingSkills         []string                      `json:"missing_skills"`
	PartialMatchSkills    []string                      `json:"partial_match_skills"`
	MissingSkillDetails   map[string]MissingSkillDetail `json:"missing_skill_details"`
	GapSeverity           GapSeverity                   `json:"gap_severity"`
	GapPercentage         float64                       `json:"gap_percentage"`
	BridgeabilityScore    float64                       `json:"bridgeability_score"`
	EstimatedTimeToBridge int                           `json:"estimated_time_to_bridge"` // hours
	PriorityOrdering      []string                      `json:"priority_ordering"`
}
