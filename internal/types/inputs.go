//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// JobPosting is the job-side input supplied by the job-storage collaborator.
type JobPosting struct {
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	RequiredSkills []string          `json:"required_skills"`
	RequiredLevels map[string]string `json:"required_levels,omitempty"` // skill -> beginner|intermediate|advanced|expert
	Context        string            `json:"context,omitempty"`         // optional context bucket hint for keyword matching
}

// CandidateProfile is the candidate-side input supplied by the
// document-extraction collaborator.
type CandidateProfile struct {
	ID          uuid.UUID         `json:"id,omitempty"`
	Name        string            `json:"name,omitempty"`
	Skills      []string          `json:"skills"`
	ResumeText  string            `json:"resume_text"`
	SkillLevels map[string]string `json:"skill_levels,omitempty"` // skill -> held proficiency level
}

// RankedCandidate pairs a candidate with their unified match result for
// batch ranking output.
type RankedCandidate struct {
	CandidateID uuid.UUID          `json:"candidate_id"`
	Name        string             `json:"name,omitempty"`
	Result      UnifiedMatchResult `json:"result"`
}
