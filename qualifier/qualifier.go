package qualifier

import (
	"fmt"
	"regexp"
	"sort"
)

// Qualifier represents one magnitude phrase found in page text. Immutable
// once created.
type Qualifier struct {
	Phrase    string  // matched text, e.g. "millions"
	Scale     float64 // multiplier the phrase implies, e.g. 1e6
	Start     int     // byte offset of the phrase in the cleaned page text
	End       int     // byte offset one past the phrase
	PageIndex int     // 0-based page the phrase was found on
}

// String returns a compact description of the qualifier for diagnostics.
func (q Qualifier) String() string {
	return fmt.Sprintf("%q x%g@%d:%d(p%d)", q.Phrase, q.Scale, q.Start, q.End, q.PageIndex)
}

// Entry maps one phrase pattern to its scale factor. Pattern is a regular
// expression fragment matched case-insensitively on word boundaries.
type Entry struct {
	Pattern string  `yaml:"pattern"`
	Scale   float64 `yaml:"scale"`
}

// Table is an ordered set of qualifier entries. Adding a magnitude word is a
// data change: append an Entry and recompile.
type Table []Entry

// DefaultTable returns the built-in magnitude table: thousand through
// trillion with the common mil/bil/tril short forms. The bare short form "k"
// is deliberately absent; under span scoping a stray "k" ("401k") would
// rescale the rest of the page.
func DefaultTable() Table {
	return Table{
		{Pattern: `thousands?`, Scale: 1e3},
		{Pattern: `millions?|mil`, Scale: 1e6},
		{Pattern: `billions?|bil`, Scale: 1e9},
		{Pattern: `trillions?|tril`, Scale: 1e12},
	}
}

// compiledEntry pairs a compiled pattern with its scale.
type compiledEntry struct {
	pattern *regexp.Regexp
	scale   float64
}

// Detector scans page text for the phrases of one compiled Table. A Detector
// is stateless after construction and safe for concurrent use.
type Detector struct {
	entries []compiledEntry
}

// NewDetector compiles the table into a Detector. Each pattern is wrapped in
// word boundaries and matched case-insensitively, which keeps table entries
// tolerant of surrounding words: "in millions of dollars" and "(In
// Thousands)" both match on the magnitude word alone.
func NewDetector(table Table) (*Detector, error) {
	if len(table) == 0 {
		table = DefaultTable()
	}

	entries := make([]compiledEntry, 0, len(table))
	for _, e := range table {
		if e.Scale <= 0 {
			return nil, fmt.Errorf("qualifier pattern %q: scale must be positive, got %v", e.Pattern, e.Scale)
		}
		re, err := regexp.Compile(`(?i)\b(?:` + e.Pattern + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("compiling qualifier pattern %q: %w", e.Pattern, err)
		}
		entries = append(entries, compiledEntry{pattern: re, scale: e.Scale})
	}

	return &Detector{entries: entries}, nil
}

// MustDetector is like NewDetector but panics on an invalid table. It is
// intended for static tables known to be valid.
func MustDetector(table Table) *Detector {
	d, err := NewDetector(table)
	if err != nil {
		panic(err)
	}
	return d
}

// Detect scans text (already cleaned by textclean.Clean) and returns every
// magnitude phrase in order of appearance. Qualifiers sharing a start offset
// are collapsed to the one with the larger scale factor, so ambiguous
// overlaps never under-scale.
func (d *Detector) Detect(pageIndex int, text string) []Qualifier {
	if text == "" {
		return nil
	}

	var found []Qualifier
	for _, e := range d.entries {
		for _, span := range e.pattern.FindAllStringIndex(text, -1) {
			found = append(found, Qualifier{
				Phrase:    text[span[0]:span[1]],
				Scale:     e.scale,
				Start:     span[0],
				End:       span[1],
				PageIndex: pageIndex,
			})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].Start != found[j].Start {
			return found[i].Start < found[j].Start
		}
		return found[i].Scale > found[j].Scale
	})

	// Collapse identical start offsets, keeping the larger scale.
	out := found[:0]
	for _, q := range found {
		if len(out) > 0 && out[len(out)-1].Start == q.Start {
			continue
		}
		out = append(out, q)
	}

	return out
}
