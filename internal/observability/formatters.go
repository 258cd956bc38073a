// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/akhilmohan/resume-wizard/internal/extraction"
	"github.com/akhilmohan/resume-wizard/internal/scoring"
	"github.com/akhilmohan/resume-wizard/internal/skills"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobExtraction outputs a human-readable summary of the extracted job
// requirement signals.
func (p *Printer) PrintJobExtraction(result *extraction.JobExtraction) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:         %s\n", itemList(result.Skills)))
	sb.WriteString(fmt.Sprintf("Experience:     %s\n", itemList(result.Experience)))
	sb.WriteString(fmt.Sprintf("Qualifications: %s\n", itemList(result.Qualifications)))
	sb.WriteString(fmt.Sprintf("Keywords:       %s", itemList(result.Keywords)))

	p.printBox("Job Requirement Extraction", sb.String())
}

// PrintScore outputs the ATS score with its component breakdown.
func (p *Printer) PrintScore(score int, breakdown *scoring.Breakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:      %d/100 (%s)\n", score, scoring.Label(score)))
	sb.WriteString(fmt.Sprintf("Base:       %d\n", breakdown.Base))
	sb.WriteString(fmt.Sprintf("Structural: +%d\n", breakdown.Structural))
	if breakdown.KeywordTotal > 0 {
		sb.WriteString(fmt.Sprintf("Keywords:   +%.1f (%d of %d matched)",
			breakdown.KeywordScore, breakdown.KeywordMatched, breakdown.KeywordTotal))
	} else {
		sb.WriteString("Keywords:   +0 (no job requirement)")
	}

	p.printBox("ATS Compatibility", sb.String())
}

// PrintCategorizedSkills outputs the skill buckets, omitting empty ones.
func (p *Printer) PrintCategorizedSkills(buckets map[skills.Category][]string) {
	var sb strings.Builder
	first := true
	for _, category := range skills.Categories {
		entries := buckets[category]
		if len(entries) == 0 {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false
		sb.WriteString(fmt.Sprintf("%s: %s", category, itemList(entries)))
	}
	if first {
		sb.WriteString("(no skills)")
	}

	p.printBox("Skill Categories", sb.String())
}

// PrintSuggestions outputs the keyword-gap suggestions.
func (p *Printer) PrintSuggestions(suggestions []string) {
	content := "(none)"
	if len(suggestions) > 0 {
		content = itemList(suggestions)
	}
	p.printBox("Suggested Keywords", content)
}

// itemList joins up to maxItemsToShow items, noting how many were elided.
func itemList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	shown := items
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	out := strings.Join(shown, ", ")
	if len(items) > maxItemsToShow {
		out += fmt.Sprintf(" (+%d more)", len(items)-maxItemsToShow)
	}
	return out
}
