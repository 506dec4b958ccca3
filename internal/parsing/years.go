package parsing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// maxPlausibleYears discards numbers that are clearly not experience requirements
const maxPlausibleYears = 50

const numberExpr = `(\d{1,2}|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|fifteen|twenty)`

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
	"eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12, "fifteen": 15, "twenty": 20,
}

var (
	yearsRange = regexp.MustCompile(`(?i)\b` + numberExpr + `\s*(?:-|–|—|to)\s*` + numberExpr + `\s*\+?\s*(?:years?|yrs?)\b`)
	yearsOther = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b` + numberExpr + `\s*\+\s*(?:years?|yrs?)\b`),
		regexp.MustCompile(`(?i)\b(?:minimum(?:\s+of)?|at\s+least|min\.?)\s+` + numberExpr + `\s*(?:years?|yrs?)\b`),
		regexp.MustCompile(`(?i)\b` + numberExpr + `\s*(?:years?|yrs?)\s+(?:of|in|with|experience)\b`),
	}
	dateRange = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:19|20)\d{2}|present|current|now|today)\b`)
)

// ScanYears returns the largest years-of-experience figure stated in text, or 0.
// Ranges such as "3-5 years" contribute their lower bound.
func ScanYears(text string) int {
	best := 0
	masked := []byte(text)
	for _, m := range yearsRange.FindAllStringSubmatchIndex(text, -1) {
		if n := parseNumber(text[m[2]:m[3]]); n <= maxPlausibleYears && n > best {
			best = n
		}
		for i := m[0]; i < m[1]; i++ {
			masked[i] = ' '
		}
	}
	rest := string(masked)
	for _, re := range yearsOther {
		for _, m := range re.FindAllStringSubmatch(rest, -1) {
			if n := parseNumber(m[1]); n <= maxPlausibleYears && n > best {
				best = n
			}
		}
	}
	return best
}

func parseNumber(s string) int {
	if n, ok := numberWords[strings.ToLower(s)]; ok {
		return n
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// yearSpan is a closed interval of calendar years
type yearSpan struct {
	from, to int
}

// ScanEmploymentYears estimates years of experience from date ranges such as "2016 - 2020"
// or "2019 - Present", counting overlapping ranges once.
func ScanEmploymentYears(text string, now time.Time) int {
	var spans []yearSpan
	for _, m := range dateRange.FindAllStringSubmatch(text, -1) {
		from, _ := strconv.Atoi(m[1])
		to, err := strconv.Atoi(m[2])
		if err != nil {
			to = now.Year()
		}
		if to < from || to > now.Year() {
			continue
		}
		spans = append(spans, yearSpan{from: from, to: to})
	}
	if len(spans) == 0 {
		return 0
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].from < spans[j].from })
	total := 0
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.from <= cur.to {
			cur.to = max(cur.to, s.to)
			continue
		}
		total += cur.to - cur.from
		cur = s
	}
	total += cur.to - cur.from
	return min(total, maxPlausibleYears)
}
