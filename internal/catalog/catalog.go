// Package catalog holds the curated, read-only lookup tables used by every scoring stage.
// Tables are stored as JSON files, embedded at compile time and validated once at load.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/fit-scorer/internal/types"
)

//go:embed data/*.json
var dataFiles embed.FS

// Catalog is the immutable set of lookup tables shared by all scoring calls.
// It is safe for concurrent use once Load returns.
type Catalog struct {
	patterns     []*Pattern
	degreeRanks  map[string]int
	jobSections  []headerEntry
	cvSections   []headerEntry
	indicators   Indicators
	equivalence  map[string][]int
	clusters     map[string][]string
	clusterNames []string
	transfers    map[string]Transfer
	industries   []IndustryCluster
	industryIdx  map[string]int
	aliases      map[string]string
	transitions  map[string]map[string]float64
	tiers        map[string]float64
}

type headerEntry struct {
	header  string
	section Section
}

// Load reads, validates and indexes every embedded table.
// A failure here is a programming error and callers should abort start-up.
func Load() (*Catalog, error) {
	validate := validator.New()
	c := &Catalog{}

	var keywords keywordsFile
	if err := decode("keywords.json", &keywords, validate); err != nil {
		return nil, err
	}
	if err := c.indexKeywords(keywords); err != nil {
		return nil, err
	}

	var sections sectionsFile
	if err := decode("sections.json", &sections, validate); err != nil {
		return nil, err
	}
	c.jobSections = indexSections(sections.JobSections)
	c.cvSections = indexSections(sections.CVSections)

	if err := decode("priorities.json", &c.indicators, validate); err != nil {
		return nil, err
	}

	var equivalences equivalencesFile
	if err := decode("equivalences.json", &equivalences, validate); err != nil {
		return nil, err
	}
	c.equivalence = make(map[string][]int)
	for i, group := range equivalences.Groups {
		for _, term := range group {
			key := normalize(term)
			c.equivalence[key] = append(c.equivalence[key], i)
		}
	}

	var domain domainClustersFile
	if err := decode("domain_clusters.json", &domain, validate); err != nil {
		return nil, err
	}
	c.clusters = make(map[string][]string, len(domain.Clusters))
	for name, terms := range domain.Clusters {
		normalized := make([]string, 0, len(terms))
		for _, t := range terms {
			normalized = append(normalized, normalize(t))
		}
		c.clusters[name] = normalized
		c.clusterNames = append(c.clusterNames, name)
	}
	sort.Strings(c.clusterNames)

	var transfers transferableFile
	if err := decode("transferable.json", &transfers, validate); err != nil {
		return nil, err
	}
	c.transfers = make(map[string]Transfer, len(transfers.Skills))
	for _, t := range transfers.Skills {
		key := normalize(t.Target)
		if _, dup := c.transfers[key]; dup {
			return nil, &LoadError{File: "transferable.json", Message: fmt.Sprintf("duplicate target %q", t.Target)}
		}
		c.transfers[key] = t
	}

	var industries industriesFile
	if err := decode("industries.json", &industries, validate); err != nil {
		return nil, err
	}
	if err := c.indexIndustries(industries); err != nil {
		return nil, err
	}

	return c, nil
}

// MustLoad is Load that panics on failure, for process start-up and tests.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load catalog: %v", err))
	}
	return c
}

func decode(file string, into any, validate *validator.Validate) error {
	data, err := dataFiles.ReadFile("data/" + file)
	if err != nil {
		return &LoadError{File: file, Message: "failed to read", Cause: err}
	}
	if err := json.Unmarshal(data, into); err != nil {
		return &LoadError{File: file, Message: "failed to parse", Cause: err}
	}
	if err := validate.Struct(into); err != nil {
		return &LoadError{File: file, Message: "invalid table", Cause: err}
	}
	return nil
}

func (c *Catalog) indexKeywords(file keywordsFile) error {
	c.degreeRanks = make(map[string]int)
	seen := make(map[string]bool)
	for _, cat := range file.Categories {
		if !cat.Kind.Valid() {
			return &LoadError{File: "keywords.json", Message: fmt.Sprintf("unknown kind %q in %s", cat.Kind, cat.Category)}
		}
		for _, term := range cat.Terms {
			name := normalize(term.Name)
			if seen[name] {
				return &LoadError{File: "keywords.json", Message: fmt.Sprintf("duplicate term %q", term.Name)}
			}
			seen[name] = true
			if cat.Kind == types.KindEducation {
				c.degreeRanks[name] = term.Rank
			}
			literals := term.Patterns
			if len(literals) == 0 {
				literals = []string{term.Name}
			}
			for _, literal := range literals {
				p, err := compilePattern(name, cat.Kind, cat.Category, literal)
				if err != nil {
					return &LoadError{File: "keywords.json", Message: fmt.Sprintf("bad pattern %q", literal), Cause: err}
				}
				c.patterns = append(c.patterns, p)
			}
		}
	}
	return nil
}

func indexSections(sections []Section) []headerEntry {
	var entries []headerEntry
	for _, s := range sections {
		for _, h := range s.Headers {
			entries = append(entries, headerEntry{header: normalize(h), section: s})
		}
	}
	// longest header first so "preferred qualifications" wins over "qualifications"
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].header) > len(entries[j].header)
	})
	return entries
}

func (c *Catalog) indexIndustries(file industriesFile) error {
	c.industries = file.Clusters
	c.industryIdx = make(map[string]int, len(file.Clusters))
	c.aliases = make(map[string]string)
	for i, ind := range file.Clusters {
		label := normalize(ind.Label)
		if _, dup := c.industryIdx[label]; dup {
			return &LoadError{File: "industries.json", Message: fmt.Sprintf("duplicate industry %q", ind.Label)}
		}
		c.industryIdx[label] = i
		c.aliases[label] = ind.Label
		for _, a := range ind.Aliases {
			c.aliases[normalize(a)] = ind.Label
		}
	}

	for _, src := range file.Clusters {
		row, ok := file.Transitions[src.Label]
		if !ok {
			return &LoadError{File: "industries.json", Message: fmt.Sprintf("missing transition row for %q", src.Label)}
		}
		if len(row) != len(file.Clusters) {
			return &LoadError{File: "industries.json", Message: fmt.Sprintf("transition row %q has %d entries, want %d", src.Label, len(row), len(file.Clusters))}
		}
		for _, dst := range file.Clusters {
			v, ok := row[dst.Label]
			if !ok {
				return &LoadError{File: "industries.json", Message: fmt.Sprintf("missing transition %s->%s", src.Label, dst.Label)}
			}
			if v < 0 || v > 1 || math.IsNaN(v) {
				return &LoadError{File: "industries.json", Message: fmt.Sprintf("transition %s->%s out of range: %v", src.Label, dst.Label, v)}
			}
			if src.Label == dst.Label && v != 1.0 {
				return &LoadError{File: "industries.json", Message: fmt.Sprintf("diagonal %s must be 1.0", src.Label)}
			}
		}
	}
	if len(file.Transitions) != len(file.Clusters) {
		return &LoadError{File: "industries.json", Message: "transition matrix has rows for unknown industries"}
	}
	c.transitions = file.Transitions

	c.tiers = make(map[string]float64)
	for _, s := range file.Transferability.Low {
		c.tiers[normalize(s)] = TierLow
	}
	for _, s := range file.Transferability.Medium {
		c.tiers[normalize(s)] = TierMedium
	}
	for _, s := range file.Transferability.High {
		c.tiers[normalize(s)] = TierHigh
	}
	return nil
}

// normalize lowercases, trims and collapses internal whitespace
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
