package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/fit-scorer/internal/catalog"
	"github.com/jonathan/fit-scorer/internal/types"
)

// section is a run of lines under one recognised header
type section struct {
	Name    string
	Hint    types.Priority
	Extract bool
	Lines   []string
}

// preambleSection holds the lines before the first header
const preambleSection = "preamble"

// splitSections groups job description lines under the headers the catalog recognises.
// Text without any header becomes a single extractable section with no priority hint.
func splitSections(cat *catalog.Catalog, text string) []section {
	lines := strings.Split(normalizeNewlines(text), "\n")

	current := section{Name: preambleSection, Extract: true}
	var out []section
	headers := 0
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if s, ok := cat.JobSection(line); ok {
			out = appendSection(out, current)
			current = section{Name: s.Name, Hint: s.Priority, Extract: s.Extract}
			headers++
			continue
		}
		// "Requirements: Python, SQL" opens a section and carries content on the same line
		if before, after, found := strings.Cut(line, ":"); found && strings.TrimSpace(after) != "" {
			if s, ok := cat.JobSection(before + ":"); ok && (s.Priority != "" || !s.Extract) {
				out = appendSection(out, current)
				current = section{Name: s.Name, Hint: s.Priority, Extract: s.Extract, Lines: []string{strings.TrimSpace(after)}}
				headers++
				continue
			}
		}
		current.Lines = append(current.Lines, line)
	}
	out = appendSection(out, current)

	if headers == 0 && len(out) == 1 {
		out[0].Name = "requirements"
	}
	return out
}

func appendSection(out []section, s section) []section {
	if len(s.Lines) == 0 {
		return out
	}
	return append(out, s)
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

var (
	bulletPrefix   = regexp.MustCompile(`^(?:[-*•·–—>]+|\(?\d{1,2}[.)]|\(?[a-z][.)])\s+`)
	fragmentBreaks = regexp.MustCompile(`[;•]|[.!?](?:\s+|$)`)
)

// splitFragments breaks section lines into bullet and sentence fragments
func splitFragments(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = bulletPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		for _, part := range fragmentBreaks.Split(line, -1) {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
