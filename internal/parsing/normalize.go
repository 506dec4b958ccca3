package parsing

import "strings"

// skillAliases maps common spelling variants to the canonical catalog name
var skillAliases = map[string]string{
	"golang":          "go",
	"go lang":         "go",
	"js":              "javascript",
	"ecmascript":      "javascript",
	"ts":              "typescript",
	"k8s":             "kubernetes",
	"react.js":        "react",
	"reactjs":         "react",
	"vue.js":          "vue",
	"vuejs":           "vue",
	"nodejs":          "node.js",
	"node":            "node.js",
	"postgres":        "postgresql",
	"mssql":           "sql server",
	"ms excel":        "excel",
	"microsoft excel": "excel",
	"ml":              "machine learning",
	"c sharp":         "c#",
	"cpp":             "c++",
	"sklearn":         "scikit-learn",
	"powerbi":         "power bi",
	"problem-solving": "problem solving",
	"organised":       "organized",
}

// ComparisonKey is the spelling-insensitive form of a skill string: trimmed, lowercased,
// whitespace collapsed and trailing punctuation removed. Aliases are not resolved.
func ComparisonKey(skillName string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(skillName)), " ")
	return strings.TrimRight(normalized, ".,;:!?")
}

// NormalizeSkillName reduces a skill string to its canonical catalog name:
// the comparison key with aliases resolved.
func NormalizeSkillName(skillName string) string {
	normalized := ComparisonKey(skillName)
	if normalized == "" {
		return ""
	}
	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSkills normalizes every entry and drops blanks and duplicates, keeping first-seen order
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		n := NormalizeSkillName(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
