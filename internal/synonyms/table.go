// Package synonyms provides the synonym table the keyword matcher consults:
// canonical skill names mapped to their accepted variant spellings, grouped
// by category. Tables are loaded once and treated as immutable.
package synonyms

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/skillmatch/internal/normalize"
)

// Table maps category -> canonical skill name -> synonym list.
// The canonical name must appear in its own synonym list.
type Table map[string]map[string][]string

// ParseTable parses and validates a JSON synonym table document.
func ParseTable(data []byte) (Table, error) {
	if err := validateTableDocument(data); err != nil {
		return nil, err
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse synonym table JSON: %w", err)
	}

	// Schema checks shape only; the canonical-in-own-list contract needs code.
	for category, entries := range table {
		for canonical, syns := range entries {
			if !containsNormalized(syns, normalize.Skill(canonical)) {
				return nil, fmt.Errorf("synonym table entry %s/%s does not list its canonical name as a synonym", category, canonical)
			}
		}
	}

	return table, nil
}

func containsNormalized(list []string, normalized string) bool {
	for _, s := range list {
		if normalize.Skill(s) == normalized {
			return true
		}
	}
	return false
}

// Merge returns a new table with entries from other layered over t.
// Categories present in both are merged per canonical name, other winning.
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for category, entries := range t {
		dst := make(map[string][]string, len(entries))
		for canonical, syns := range entries {
			dst[canonical] = append([]string(nil), syns...)
		}
		merged[category] = dst
	}
	for category, entries := range other {
		dst, ok := merged[category]
		if !ok {
			dst = make(map[string][]string, len(entries))
			merged[category] = dst
		}
		for canonical, syns := range entries {
			dst[canonical] = append([]string(nil), syns...)
		}
	}
	return merged
}

// Closure returns the set of normalized skill strings reachable from the
// required skill through the table: every entry of every group whose
// canonical name or synonym list normalizes to the required skill.
func (t Table) Closure(requiredSkill string) map[string]struct{} {
	target := normalize.Skill(requiredSkill)
	closure := make(map[string]struct{})
	if target == "" {
		return closure
	}

	for _, entries := range t {
		for canonical, syns := range entries {
			inGroup := normalize.Skill(canonical) == target
			if !inGroup {
				inGroup = containsNormalized(syns, target)
			}
			if !inGroup {
				continue
			}
			closure[normalize.Skill(canonical)] = struct{}{}
			for _, s := range syns {
				if n := normalize.Skill(s); n != "" {
					closure[n] = struct{}{}
				}
			}
		}
	}

	return closure
}

// CategoryOf returns the category of the group containing the given skill,
// or "" if the skill appears in no group.
func (t Table) CategoryOf(skill string) string {
	target := normalize.Skill(skill)
	if target == "" {
		return ""
	}
	for category, entries := range t {
		for canonical, syns := range entries {
			if normalize.Skill(canonical) == target || containsNormalized(syns, target) {
				return category
			}
		}
	}
	return ""
}
