// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/fit-scorer/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if r := []rune(line); len(r) > boxWidth-4 {
			line = string(r[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit items under a heading, noting how many were left out
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s:\n", heading)
	for _, item := range items[:min(len(items), limit)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

func requirementTexts(reqs []types.Requirement) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, fmt.Sprintf("%s (%s)", r.Text, r.Kind))
	}
	return out
}

// PrintExtraction outputs a summary of the requirements parsed from a job description.
func (p *Printer) PrintExtraction(e *types.RequirementsExtraction) {
	if e == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total requirements: %d\n", e.TotalRequirements)
	if e.YearsExperienceRequired > 0 {
		fmt.Fprintf(&sb, "Years required:     %d\n", e.YearsExperienceRequired)
	}
	sb.WriteString("\n")
	writeList(&sb, "Required", requirementTexts(e.Required), maxItemsToShow)
	writeList(&sb, "Preferred", requirementTexts(e.Preferred), maxItemsToShow)
	writeList(&sb, "Nice-to-have", requirementTexts(e.NiceToHave), 3)

	p.printBox("EXTRACTED REQUIREMENTS", strings.TrimRight(sb.String(), "\n"))
}

// PrintIndustry outputs the industry transition assessment.
func (p *Printer) PrintIndustry(a *types.IndustryAlignment) {
	if a == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Transition: %s → %s (%s)\n", a.SourceIndustry, a.TargetIndustry, a.TransitionCategory)
	fmt.Fprintf(&sb, "Difficulty: %.2f\n\n", a.TransitionDifficulty)
	fmt.Fprintf(&sb, "Domain overlap:        %5.1f\n", a.DomainOverlapScore)
	fmt.Fprintf(&sb, "Skill transferability: %5.1f\n", a.SkillTransferabilityScore)
	fmt.Fprintf(&sb, "Experience relevance:  %5.1f\n", a.ExperienceRelevanceScore)
	fmt.Fprintf(&sb, "Overall fit:           %5.1f\n", a.OverallFitScore)
	if len(a.KeyGaps) > 0 || len(a.TransferableAdvantages) > 0 {
		sb.WriteString("\n")
	}
	writeList(&sb, "Key gaps", a.KeyGaps, 3)
	writeList(&sb, "Transferable advantages", a.TransferableAdvantages, 3)

	p.printBox("INDUSTRY ALIGNMENT", strings.TrimRight(sb.String(), "\n"))
}

// PrintBreakdown outputs the final score and how it was assembled.
func (p *Printer) PrintBreakdown(b *types.ATSScoreBreakdown) {
	if b == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Final score: %.1f  %s\n", b.FinalScore, b.CategoryStatus)
	sb.WriteString(b.Recommendation + "\n\n")

	fmt.Fprintf(&sb, "Direct matches   %5.1f / 40\n", b.CategoryOne.Total)
	fmt.Fprintf(&sb, "  technical      %5.1f  (rate %.2f)\n", b.CategoryOne.TechnicalPoints, b.MatchRates[types.SkillTechnical])
	fmt.Fprintf(&sb, "  soft           %5.1f  (rate %.2f)\n", b.CategoryOne.SoftPoints, b.MatchRates[types.SkillSoft])
	fmt.Fprintf(&sb, "  domain         %5.1f  (rate %.2f)\n", b.CategoryOne.DomainPoints, b.MatchRates[types.SkillDomain])
	fmt.Fprintf(&sb, "Components       %5.1f / 60\n", b.CategoryTwo.Total)
	fmt.Fprintf(&sb, "  core           %5.1f\n", b.CategoryTwo.CoreCompetency)
	fmt.Fprintf(&sb, "  experience     %5.1f\n", b.CategoryTwo.ExperienceSeniority)
	fmt.Fprintf(&sb, "  potential      %5.1f\n", b.CategoryTwo.PotentialAbility)
	fmt.Fprintf(&sb, "  company fit    %5.1f\n", b.CategoryTwo.CompanyFit)
	fmt.Fprintf(&sb, "Bonus            %+5.1f\n", b.BonusPoints)

	c := b.Bonus.MatchCounts
	fmt.Fprintf(&sb, "  required  %d/%d matched\n", c.MatchedRequired, c.TotalRequired)
	fmt.Fprintf(&sb, "  preferred %d/%d matched\n", c.MatchedPreferred, c.TotalPreferred)

	if len(b.Degraded) > 0 {
		degraded := append([]string(nil), b.Degraded...)
		sort.Strings(degraded)
		fmt.Fprintf(&sb, "\nDegraded stages: %s\n", strings.Join(degraded, ", "))
	}

	p.printBox("FIT SCORE", strings.TrimRight(sb.String(), "\n"))
}
