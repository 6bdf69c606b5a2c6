// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintUnifiedResult outputs a human-readable summary of one unified match.
func (p *Printer) PrintUnifiedResult(result *types.UnifiedMatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:   %.2f (%s)\n", result.OverallScore, verdict(result.OverallPassed)))
	sb.WriteString(fmt.Sprintf("Tier:      %s\n\n", result.Recommendation))
	sb.WriteString(fmt.Sprintf("Keyword:   %.2f (%s)\n", result.KeywordScore, verdict(result.KeywordPassed)))
	sb.WriteString(fmt.Sprintf("Terms:     %.2f (%s)\n", result.TFIDFScore, verdict(result.TFIDFPassed)))
	sb.WriteString(fmt.Sprintf("Semantic:  %.2f (%s, %s)\n", result.SemanticScore, verdict(result.SemanticPassed), result.SemanticMethod))

	if len(result.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMatched:   %s\n", joinCapped(result.MatchedSkills, 40)))
	}
	if len(result.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:   %s\n", joinCapped(result.MissingSkills, 40)))
	}
	if len(result.MissingTerms) > 0 {
		sb.WriteString(fmt.Sprintf("Terms gap: %s\n", joinCapped(result.MissingTerms, 40)))
	}

	p.printBox("UNIFIED MATCH RESULT", sb.String())
}

// PrintGapResult outputs a human-readable summary of a gap analysis.
func (p *Printer) PrintGapResult(result *types.GapResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Gap:           %.1f%% (%s)\n", result.GapPercentage, result.GapSeverity))
	sb.WriteString(fmt.Sprintf("Bridgeability: %.2f\n", result.BridgeabilityScore))
	sb.WriteString(fmt.Sprintf("Est. hours:    %d\n\n", result.EstimatedTimeToBridge))

	sb.WriteString(fmt.Sprintf("Matched: %d  Partial: %d  Missing: %d\n",
		len(result.MatchedSkills), len(result.PartialMatchSkills), len(result.MissingSkills)))

	if len(result.PriorityOrdering) > 0 {
		sb.WriteString("\nPriority order:\n")
		count := min(len(result.PriorityOrdering), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := result.PriorityOrdering[i]
			detail := result.MissingSkillDetails[skill]
			sb.WriteString(fmt.Sprintf("#%d  %s (%s, %s)\n", i+1, skill, detail.Status, detail.Category))
		}
		if len(result.PriorityOrdering) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more skills\n", len(result.PriorityOrdering)-maxItemsToShow))
		}
	}

	p.printBox("SKILL GAP ANALYSIS", sb.String())
}

// PrintRankedCandidates outputs the top of a ranked candidate batch.
func (p *Printer) PrintRankedCandidates(ranked []types.RankedCandidate) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		rc := ranked[i]
		name := rc.Name
		if name == "" {
			name = rc.CandidateID.String()
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%s)\n", rc.Result.OverallScore, rc.Result.Recommendation))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CANDIDATES", sb.String())
}

func verdict(passed bool) string {
	if passed {
		return "pass"
	}
	return "fail"
}

func joinCapped(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}
