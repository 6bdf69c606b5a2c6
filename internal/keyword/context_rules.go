package keyword

import (
	"strings"

	"github.com/jonathan/skillmatch/internal/normalize"
)

// contextRules maps a context bucket to per-skill allow-lists of normalized
// variants. The lists are deliberately narrower than the synonym table: they
// only admit variants that cannot cross domains within the bucket
// (e.g. "react native" is excluded from the "react" web-framework rule),
// which is what lets a context hit carry 0.95 confidence.
var contextRules = map[string]map[string][]string{
	"web_framework": {
		"react":   {"react", "reactjs", "react.js"},
		"angular": {"angular", "angularjs", "angular.js"},
		"vue":     {"vue", "vuejs", "vue.js"},
		"django":  {"django"},
		"flask":   {"flask"},
		"rails":   {"rails", "ruby on rails"},
		"express": {"express", "expressjs", "express.js"},
	},
	"database": {
		"sql":        {"sql"},
		"postgresql": {"postgresql", "postgres"},
		"mysql":      {"mysql"},
		"mongodb":    {"mongodb", "mongo"},
		"redis":      {"redis"},
	},
	"language": {
		"python":     {"python", "python3"},
		"javascript": {"javascript", "js"},
		"typescript": {"typescript", "ts"},
		"go":         {"go", "golang"},
		"java":       {"java"},
		"ruby":       {"ruby"},
	},
}

// contextAllowList returns the allow-list for a required skill inside a
// context bucket, or nil when the bucket or skill has no rule.
func contextAllowList(context, requiredSkill string) []string {
	bucket, ok := contextRules[strings.ToLower(strings.TrimSpace(context))]
	if !ok {
		return nil
	}
	return bucket[normalize.Skill(requiredSkill)]
}
