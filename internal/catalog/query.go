package catalog

import (
	"sort"
	"strings"

	"github.com/jonathan/fit-scorer/internal/types"
)

// Transferability tier scores
const (
	TierHigh    = 100.0
	TierMedium  = 70.0
	TierLow     = 30.0
	TierUnknown = 50.0
)

// Indicators returns the priority indicator phrases
func (c *Catalog) Indicators() Indicators {
	return c.indicators
}

// JobSection classifies a job description line as a section header.
// Returns false when the line is not a header.
func (c *Catalog) JobSection(line string) (Section, bool) {
	return matchHeader(c.jobSections, line)
}

// CVSection classifies a CV line as a section header
func (c *Catalog) CVSection(line string) (Section, bool) {
	return matchHeader(c.cvSections, line)
}

// maxHeaderLength bounds how long a header line can be; longer lines are content
const maxHeaderLength = 60

func matchHeader(entries []headerEntry, line string) (Section, bool) {
	raw := strings.TrimSpace(line)
	if raw == "" || isBullet(raw) {
		return Section{}, false
	}
	// markdown headings, bold lines and trailing colons mark a header explicitly
	explicit := strings.HasPrefix(raw, "#") || strings.HasSuffix(raw, ":") ||
		(strings.HasPrefix(raw, "**") && strings.HasSuffix(raw, "**"))

	cleaned := strings.TrimLeft(raw, "#*=_ \t")
	cleaned = strings.TrimRight(cleaned, ":*=_ \t")
	cleaned = normalize(cleaned)
	if cleaned == "" || len(cleaned) > maxHeaderLength {
		return Section{}, false
	}
	for _, e := range entries {
		if cleaned == e.header {
			return e.section, true
		}
	}
	if !explicit {
		return Section{}, false
	}
	for _, e := range entries {
		if strings.HasPrefix(cleaned, e.header+" ") || strings.HasSuffix(cleaned, " "+e.header) {
			return e.section, true
		}
	}
	return Section{}, false
}

func isBullet(line string) bool {
	for _, prefix := range []string{"- ", "* ", "• ", "· ", "– "} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// Equivalent reports whether two skills share a curated equivalence group
func (c *Catalog) Equivalent(a, b string) bool {
	ga := c.equivalence[normalize(a)]
	if len(ga) == 0 {
		return false
	}
	gb := c.equivalence[normalize(b)]
	for _, x := range ga {
		for _, y := range gb {
			if x == y {
				return true
			}
		}
	}
	return false
}

// ClustersOf returns the sorted domain clusters a term belongs to.
// A term belongs to a cluster when it equals or contains one of the cluster's terms as whole words.
func (c *Catalog) ClustersOf(term string) []string {
	key := " " + normalize(term) + " "
	if strings.TrimSpace(key) == "" {
		return nil
	}
	var out []string
	for _, name := range c.clusterNames {
		for _, t := range c.clusters[name] {
			if strings.Contains(key, " "+t+" ") {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// ClusterNames returns every domain cluster name, sorted
func (c *Catalog) ClusterNames() []string {
	out := make([]string, len(c.clusterNames))
	copy(out, c.clusterNames)
	return out
}

// TransferSources returns the skills that make target learnable
func (c *Catalog) TransferSources(target string) (Transfer, bool) {
	t, ok := c.transfers[normalize(target)]
	return t, ok
}

// IndustryLabels returns the industry labels in table order
func (c *Catalog) IndustryLabels() []string {
	out := make([]string, len(c.industries))
	for i, ind := range c.industries {
		out[i] = ind.Label
	}
	return out
}

// Industry returns the cluster definition for a label
func (c *Catalog) Industry(label string) (IndustryCluster, bool) {
	i, ok := c.industryIdx[normalize(label)]
	if !ok {
		return IndustryCluster{}, false
	}
	return c.industries[i], true
}

// ResolveIndustry maps a free-form industry name onto a known label using labels and aliases
func (c *Catalog) ResolveIndustry(name string) (string, bool) {
	label, ok := c.aliases[normalize(strings.ReplaceAll(name, "_", " "))]
	if ok {
		return label, true
	}
	label, ok = c.aliases[normalize(name)]
	return label, ok
}

// TransitionDifficulty looks up the curated feasibility of moving from src to dst
func (c *Catalog) TransitionDifficulty(src, dst string) (float64, bool) {
	row, ok := c.transitions[src]
	if !ok {
		return 0, false
	}
	v, ok := row[dst]
	return v, ok
}

// TransferTier scores how well a skill carries across industries.
// Unknown skills score TierUnknown.
func (c *Catalog) TransferTier(skill string) float64 {
	if v, ok := c.tiers[normalize(skill)]; ok {
		return v
	}
	return TierUnknown
}

// DegreeRank orders education terms; 0 means not a degree
func (c *Catalog) DegreeRank(term string) int {
	return c.degreeRanks[normalize(term)]
}

// Kinds returns every requirement kind present in the keyword table
func (c *Catalog) Kinds() []types.Kind {
	seen := make(map[types.Kind]bool)
	var out []types.Kind
	for _, p := range c.patterns {
		if !seen[p.Kind] {
			seen[p.Kind] = true
			out = append(out, p.Kind)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
