package gap

import (
	"strings"

	"github.com/jonathan/skillmatch/internal/normalize"
	"github.com/jonathan/skillmatch/internal/types"
)

// categoryRules assigns a category by keyword containment. Buckets are
// evaluated in this fixed order and the first hit wins; skills matching no
// bucket fall back to "other". This is a deliberate approximation: the
// taxonomy has no principled source and exists to feed the priority policy.
var categoryRules = []struct {
	category types.SkillCategory
	keywords []string
}{
	{types.CategoryProgrammingLanguage, []string{
		"python", "java", "javascript", "typescript", "golang", "go",
		"c++", "c#", "ruby", "php", "rust", "kotlin", "swift", "scala",
	}},
	{types.CategoryWebFramework, []string{
		"react", "angular", "vue", "django", "flask", "rails", "express",
		"spring", "node", "node.js", "laravel", "graphql",
	}},
	{types.CategoryDatabase, []string{
		"sql", "postgresql", "postgres", "mysql", "mongodb", "mongo",
		"redis", "database", "elasticsearch", "oracle", "sqlite", "cassandra",
	}},
	{types.CategoryCloudDevOps, []string{
		"aws", "azure", "gcp", "cloud", "docker", "kubernetes", "k8s",
		"terraform", "devops", "jenkins", "ansible", "cicd", "ci/cd",
	}},
}

// Categorize assigns the first matching bucket for a skill, testing keyword
// containment on token boundaries so "Django" does not hit "go".
func Categorize(skill string) types.SkillCategory {
	normalized := normalize.Skill(skill)
	if normalized == "" {
		return types.CategoryOther
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if containsToken(normalized, kw) {
				return rule.category
			}
		}
	}
	return types.CategoryOther
}

// containsToken reports whether needle occurs in haystack bounded by
// non-alphanumeric characters or string edges.
func containsToken(haystack, needle string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], needle)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(needle)
		beforeOK := start == 0 || !isAlnum(haystack[start-1])
		afterOK := end == len(haystack) || !isAlnum(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
