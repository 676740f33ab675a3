// Package season guesses which season a poem evokes by matching its words
// against a table of seasonal keywords.
package season

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aayushbajaj/haikumator/internal/poem"
	"gopkg.in/yaml.v3"
)

//go:embed seasons.yaml
var defaultTableYAML []byte

var defaultTable Table

func init() {
	t, err := ParseTable(bytes.NewReader(defaultTableYAML))
	if err != nil {
		panic(fmt.Sprintf("season: invalid embedded table: %v", err))
	}
	defaultTable = t
}

// Group is a named keyword list within a season, such as "weather".
type Group struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// Category holds every keyword group for one season.
type Category struct {
	Season string  `yaml:"season"`
	Groups []Group `yaml:"groups"`
}

// Table is the ordered list of seasons. Order decides ties.
type Table []Category

// DefaultTable returns the built-in keyword table.
func DefaultTable() Table {
	return defaultTable
}

// ParseTable decodes a YAML keyword table.
func ParseTable(r io.Reader) (Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode season table: %w", err)
	}
	for i, c := range t {
		if c.Season == "" {
			return nil, fmt.Errorf("season table entry %d has no name", i+1)
		}
	}
	return t, nil
}

// Hit records one keyword match.
type Hit struct {
	Word   string
	Season string
	Group  string
}

// Count is the number of hits for one season.
type Count struct {
	Season string
	Hits   int
}

// Result is the outcome of a detection. Season is empty when nothing
// matched.
type Result struct {
	Season string
	Counts []Count
	Hits   []Hit
}

// Detected reports whether any seasonal keyword was found.
func (r Result) Detected() bool {
	return r.Season != ""
}

// Report formats the result for display.
func (r Result) Report() string {
	if !r.Detected() {
		return "No seasonal references detected."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Detected Season: %s\n", poem.Capitalize(r.Season))
	b.WriteString("\nSeasonal Keywords Found:")
	for _, h := range r.Hits {
		fmt.Fprintf(&b, "\n- '%s' (%s, %s)", h.Word, h.Group, h.Season)
	}
	return b.String()
}

type Detector struct {
	table Table
}

// NewDetector returns a detector over table, or over the built-in table
// when table is nil.
func NewDetector(table Table) *Detector {
	if table == nil {
		table = defaultTable
	}
	return &Detector{table: table}
}

// Detect scans every word of p. A word that appears in several groups or
// seasons counts once for each.
func (d *Detector) Detect(p poem.Poem) Result {
	counts := make([]Count, len(d.table))
	for i, c := range d.table {
		counts[i].Season = c.Season
	}

	var hits []Hit
	for _, line := range p.Lines() {
		for _, tok := range strings.Fields(strings.ToLower(line)) {
			word := poem.CleanToken(tok)
			for i, c := range d.table {
				for _, g := range c.Groups {
					if slices.Contains(g.Words, word) {
						counts[i].Hits++
						hits = append(hits, Hit{Word: word, Season: c.Season, Group: g.Name})
					}
				}
			}
		}
	}

	res := Result{Counts: counts, Hits: hits}
	best := 0
	for _, c := range counts {
		if c.Hits > best {
			best = c.Hits
			res.Season = c.Season
		}
	}
	return res
}
