package catalog

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/fit-scorer/internal/types"
)

// Pattern is one compiled literal detecting a catalog term
type Pattern struct {
	Term     string
	Kind     types.Kind
	Category string
	literal  string
	re       *regexp.Regexp
}

// Hit is one detected term span in a piece of text
type Hit struct {
	Term     string
	Kind     types.Kind
	Category string
	Start    int
	End      int
}

// word characters for boundary purposes; '+' and '#' keep "c++" and "c#" intact
const wordClass = `\p{L}\p{N}+#`

func compilePattern(term string, kind types.Kind, category, literal string) (*Pattern, error) {
	quoted := regexp.QuoteMeta(normalize(literal))
	quoted = strings.ReplaceAll(quoted, " ", `\s+`)
	expr := `(?i)(?:^|[^` + wordClass + `.])(` + quoted + `)(?:$|[^` + wordClass + `])`
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Pattern{Term: term, Kind: kind, Category: category, literal: literal, re: re}, nil
}

// Scan finds every catalog term in text, ordered by position.
// Spans contained in a longer span are dropped, and each term is reported once.
func (c *Catalog) Scan(text string) []Hit {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var hits []Hit
	for _, p := range c.patterns {
		for _, idx := range p.re.FindAllStringSubmatchIndex(text, -1) {
			hits = append(hits, Hit{Term: p.Term, Kind: p.Kind, Category: p.Category, Start: idx[2], End: idx[3]})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Start != hits[j].Start {
			return hits[i].Start < hits[j].Start
		}
		return hits[i].End-hits[i].Start > hits[j].End-hits[j].Start
	})

	out := make([]Hit, 0, len(hits))
	seen := make(map[string]bool)
	lastEnd := -1
	for _, h := range hits {
		if h.End <= lastEnd {
			continue
		}
		if h.End > lastEnd {
			lastEnd = h.End
		}
		if seen[h.Term] {
			continue
		}
		seen[h.Term] = true
		out = append(out, h)
	}
	return out
}

// ContainsPhrase reports whether phrase occurs in text as whole words, ignoring case
func ContainsPhrase(text, phrase string) bool {
	t := " " + normalizeWords(text) + " "
	p := normalizeWords(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(t, " "+p+" ")
}

// normalizeWords lowercases and replaces punctuation other than word joiners with spaces
func normalizeWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '#', r == '-', r == '/', r == '\'':
			b.WriteRune(r)
		case r > 127 && unicode.IsLetter(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
