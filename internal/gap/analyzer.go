// Package gap converts per-skill match verdicts into a remediation report:
// severity, bridgeability, an hour estimate to close the gaps, and a
// priority ordering of the skills to address.
package gap

import (
	"sort"
	"strings"

	"github.com/jonathan/skillmatch/internal/keyword"
	"github.com/jonathan/skillmatch/internal/normalize"
	"github.com/jonathan/skillmatch/internal/types"
)

// Proficiency levels on the ordinal scale the analyzer understands.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// levelRank orders proficiency levels; unknown levels rank 0.
var levelRank = map[string]int{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
	LevelExpert:       4,
}

// Config carries the tunable policy knobs of the analyzer.
type Config struct {
	// Severity thresholds on gap percentage, compared >= from critical down.
	SeverityCritical float64
	SeverityModerate float64
	SeverityMinimal  float64

	// Hours to learn a missing skill, by required proficiency level.
	// Advanced and expert requirements share HoursAdvanced.
	HoursBeginner     int
	HoursIntermediate int
	HoursAdvanced     int

	// DifficultyMultiplier scales the final hour estimate.
	DifficultyMultiplier float64
}

// DefaultConfig returns the standard analyzer policy.
func DefaultConfig() Config {
	return Config{
		SeverityCritical:     50,
		SeverityModerate:     30,
		SeverityMinimal:      10,
		HoursBeginner:        20,
		HoursIntermediate:    40,
		HoursAdvanced:        80,
		DifficultyMultiplier: 1.0,
	}
}

// Analyzer derives gap reports from keyword match verdicts. Pure and safe
// for concurrent use.
type Analyzer struct {
	matcher *keyword.Matcher
	cfg     Config
}

// NewAnalyzer creates an Analyzer. A nil matcher gets the default keyword
// matcher with the built-in synonym table.
func NewAnalyzer(matcher *keyword.Matcher, cfg Config) *Analyzer {
	if matcher == nil {
		matcher = keyword.NewMatcher(nil)
	}
	return &Analyzer{matcher: matcher, cfg: cfg}
}

// Analyze produces a fresh GapResult for the candidate against the required
// skill set. requiredLevels and candidateLevels may be nil; a skill counts
// as partial only when both its required and held levels are known and the
// held level ranks below the required one.
func (a *Analyzer) Analyze(candidateSkills, requiredSkills []string, requiredLevels, candidateLevels map[string]string) types.GapResult {
	results := a.matcher.MatchMultiple(candidateSkills, requiredSkills, "")

	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0)
	partial := make([]string, 0)
	for _, skill := range requiredSkills {
		r := results[skill]
		switch {
		case !r.Matched:
			missing = append(missing, skill)
		case isPartial(skill, r.MatchedAs, requiredLevels, candidateLevels):
			partial = append(partial, skill)
		default:
			matched = append(matched, skill)
		}
	}

	gapPct := gapPercentage(len(missing), len(partial), len(requiredSkills))
	details := a.buildDetails(missing, partial, requiredLevels)
	bridgeability := a.bridgeability(gapPct, missing, partial, details)

	return types.GapResult{
		MatchedSkills:         matched,
		MissingSkills:         missing,
		PartialMatchSkills:    partial,
		MissingSkillDetails:   details,
		GapSeverity:           a.severity(gapPct),
		GapPercentage:         gapPct,
		BridgeabilityScore:    bridgeability,
		EstimatedTimeToBridge: a.hoursToBridge(missing, partial, details, bridgeability),
		PriorityOrdering:      a.prioritize(missing, partial, requiredSkills, details),
	}
}

// isPartial reports a level shortfall on a matched skill.
func isPartial(requiredSkill, matchedAs string, requiredLevels, candidateLevels map[string]string) bool {
	requiredRank := rankOf(lookupLevel(requiredLevels, requiredSkill))
	heldLevel := lookupLevel(candidateLevels, requiredSkill)
	if heldLevel == "" {
		heldLevel = lookupLevel(candidateLevels, matchedAs)
	}
	heldRank := rankOf(heldLevel)
	return requiredRank > 0 && heldRank > 0 && heldRank < requiredRank
}

// lookupLevel finds a level by skill name, tolerating spelling differences
// via normalization.
func lookupLevel(levels map[string]string, skill string) string {
	if len(levels) == 0 || skill == "" {
		return ""
	}
	if level, ok := levels[skill]; ok {
		return level
	}
	target := normalize.Skill(skill)
	for name, level := range levels {
		if normalize.Skill(name) == target {
			return level
		}
	}
	return ""
}

func rankOf(level string) int {
	return levelRank[strings.ToLower(strings.TrimSpace(level))]
}

// gapPercentage weighs a partial match as half a missing skill, clamped to
// [0,100]. An empty requirement list has no gap.
func gapPercentage(missing, partial, required int) float64 {
	if required == 0 {
		return 0
	}
	pct := (float64(missing) + 0.5*float64(partial)) / float64(required) * 100.0
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// severity classifies the gap percentage, testing from critical downward so
// the first threshold that holds wins.
func (a *Analyzer) severity(gapPct float64) types.GapSeverity {
	switch {
	case gapPct >= a.cfg.SeverityCritical:
		return types.SeverityCritical
	case gapPct >= a.cfg.SeverityModerate:
		return types.SeverityModerate
	case gapPct >= a.cfg.SeverityMinimal:
		return types.SeverityMinimal
	default:
		return types.SeverityNone
	}
}

// buildDetails assigns status, required level, importance and category for
// every missing and partial skill. Importance is a placeholder policy pinned
// to status: missing skills are high, partial ones medium.
func (a *Analyzer) buildDetails(missing, partial []string, requiredLevels map[string]string) map[string]types.MissingSkillDetail {
	details := make(map[string]types.MissingSkillDetail, len(missing)+len(partial))
	for _, skill := range missing {
		details[skill] = types.MissingSkillDetail{
			Status:        types.StatusMissing,
			RequiredLevel: requiredLevelOf(requiredLevels, skill),
			Importance:    "high",
			Category:      Categorize(skill),
		}
	}
	for _, skill := range partial {
		details[skill] = types.MissingSkillDetail{
			Status:        types.StatusPartial,
			RequiredLevel: requiredLevelOf(requiredLevels, skill),
			Importance:    "medium",
			Category:      Categorize(skill),
		}
	}
	return details
}

func requiredLevelOf(requiredLevels map[string]string, skill string) string {
	if level := lookupLevel(requiredLevels, skill); level != "" {
		return strings.ToLower(strings.TrimSpace(level))
	}
	return LevelIntermediate
}

// bridgeability estimates how easily the gaps close: the inverse gap share,
// penalized for missing skills requiring advanced (0.1) or expert (0.15)
// proficiency, credited 0.05 per partial match, clamped to [0,1].
func (a *Analyzer) bridgeability(gapPct float64, missing, partial []string, details map[string]types.MissingSkillDetail) float64 {
	score := 1.0 - gapPct/100.0
	for _, skill := range missing {
		switch details[skill].RequiredLevel {
		case LevelAdvanced:
			score -= 0.1
		case LevelExpert:
			score -= 0.15
		}
	}
	score += 0.05 * float64(len(partial))
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

// hoursToBridge sums learning hours for missing skills, half for partial
// ones, scaled by difficulty x (2 - bridgeability), truncated to an integer.
func (a *Analyzer) hoursToBridge(missing, partial []string, details map[string]types.MissingSkillDetail, bridgeability float64) int {
	total := 0.0
	for _, skill := range missing {
		total += float64(a.hoursFor(details[skill].RequiredLevel))
	}
	for _, skill := range partial {
		total += 0.5 * float64(a.hoursFor(details[skill].RequiredLevel))
	}
	total *= a.cfg.DifficultyMultiplier * (2.0 - bridgeability)
	return int(total)
}

func (a *Analyzer) hoursFor(level string) int {
	switch level {
	case LevelBeginner:
		return a.cfg.HoursBeginner
	case LevelAdvanced, LevelExpert:
		return a.cfg.HoursAdvanced
	default:
		return a.cfg.HoursIntermediate
	}
}

// prioritize orders the gap skills by composite score descending; ties keep
// the original required-skill input order via the stable sort.
func (a *Analyzer) prioritize(missing, partial []string, requiredSkills []string, details map[string]types.MissingSkillDetail) []string {
	gapSet := make(map[string]bool, len(missing)+len(partial))
	for _, skill := range missing {
		gapSet[skill] = true
	}
	for _, skill := range partial {
		gapSet[skill] = true
	}

	ordering := make([]string, 0, len(gapSet))
	for _, skill := range requiredSkills {
		if gapSet[skill] {
			ordering = append(ordering, skill)
		}
	}

	sort.SliceStable(ordering, func(i, j int) bool {
		return priorityScore(details[ordering[i]]) > priorityScore(details[ordering[j]])
	})
	return ordering
}

// priorityScore composes the remediation priority of one gap skill.
// Partial matches outrank missing ones at the base: they are the cheapest
// gaps to close.
func priorityScore(d types.MissingSkillDetail) int {
	score := 50
	if d.Status == types.StatusPartial {
		score = 100
	}

	switch d.Importance {
	case "high":
		score += 50
	case "medium":
		score += 25
	}

	switch d.RequiredLevel {
	case LevelBeginner:
		score += 30
	case LevelIntermediate:
		score += 20
	}

	switch d.Category {
	case types.CategoryProgrammingLanguage:
		score += 20
	case types.CategoryWebFramework, types.CategoryDatabase:
		score += 10
	}

	return score
}
