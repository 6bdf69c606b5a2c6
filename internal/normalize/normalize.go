// Package normalize provides skill and free-text canonicalization shared by all matchers.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// Characters a skill name may keep: letters, digits, space, and the
	// separators that distinguish real technology names (c++, c#, node.js).
	reDisallowed = regexp.MustCompile(`[^a-z0-9 .+#]+`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// Skill canonicalizes a skill string: lower-cased, whitespace-collapsed,
// retaining only letters, digits, space, '.', '+', '#'.
// Idempotent: Skill(Skill(s)) == Skill(s). Empty input normalizes to "".
func Skill(s string) string {
	s = strings.ToLower(s)
	s = reDisallowed.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Text canonicalizes free text for term matching: lower-cased with
// whitespace collapsed, punctuation left intact so word-boundary search
// still sees the original token shapes.
func Text(s string) string {
	s = strings.ToLower(s)
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
