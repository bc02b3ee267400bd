package qualifier

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectDefaultTable(t *testing.T) {
	d := MustDetector(nil)

	tests := []struct {
		name  string
		text  string
		want  []float64
	}{
		{"millions", "figures in millions of dollars", []float64{1e6}},
		{"singular", "over a million in sales", []float64{1e6}},
		{"thousands parenthesized", "(in thousands)", []float64{1e3}},
		{"case insensitive", "IN BILLIONS", []float64{1e9}},
		{"trillion", "almost a trillion", []float64{1e12}},
		{"short form", "stated in mil", []float64{1e6}},
		{"several", "first in thousands then in millions", []float64{1e3, 1e6}},
		{"none", "no magnitude words here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(0, tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want scales %v", got, tt.want)
			}
			for i, q := range got {
				if q.Scale != tt.want[i] {
					t.Errorf("qualifier %d: scale %g, want %g", i, q.Scale, tt.want[i])
				}
			}
		})
	}
}

func TestDetectRecordsSpans(t *testing.T) {
	d := MustDetector(nil)
	text := "amounts in millions here"
	got := d.Detect(2, text)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}

	q := got[0]
	if text[q.Start:q.End] != "millions" {
		t.Errorf("span %d:%d covers %q", q.Start, q.End, text[q.Start:q.End])
	}
	if q.Phrase != "millions" {
		t.Errorf("phrase %q", q.Phrase)
	}
	if q.PageIndex != 2 {
		t.Errorf("page index %d", q.PageIndex)
	}
}

func TestDetectWordBoundaries(t *testing.T) {
	d := MustDetector(nil)
	// "milestone" must not match the "mil" short form.
	if got := d.Detect(0, "a milestone for vermillion industries"); len(got) != 0 {
		t.Errorf("matched inside words: %v", got)
	}
}

func TestDetectSameStartKeepsLargerScale(t *testing.T) {
	// Two table entries that match at the same offset: the larger factor
	// must win so ambiguity never silently under-scales.
	d := MustDetector(Table{
		{Pattern: `grand`, Scale: 1e3},
		{Pattern: `grand total`, Scale: 1e6},
	})

	got := d.Detect(0, "the grand total follows")
	if len(got) != 1 {
		t.Fatalf("expected collapsed qualifier, got %v", got)
	}
	if got[0].Scale != 1e6 {
		t.Errorf("expected larger scale to win, got %g", got[0].Scale)
	}
}

func TestDetectEmptyText(t *testing.T) {
	if got := MustDetector(nil).Detect(0, ""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestNewDetectorRejectsBadTable(t *testing.T) {
	if _, err := NewDetector(Table{{Pattern: `millions?`, Scale: 0}}); err == nil {
		t.Error("expected error for zero scale")
	}
	if _, err := NewDetector(Table{{Pattern: `(`, Scale: 1e3}}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")

	content := "- pattern: thousands?\n  scale: 1000\n- pattern: crores?\n  scale: 10000000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing table: %v", err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(table))
	}
	if table[1].Pattern != "crores?" || table[1].Scale != 1e7 {
		t.Errorf("unexpected entry: %+v", table[1])
	}

	d, err := NewDetector(table)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}
	got := d.Detect(0, "stated in crores")
	if len(got) != 1 || got[0].Scale != 1e7 {
		t.Errorf("custom table did not apply: %v", got)
	}
}

func TestLoadTableErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTable(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("- pattern: x\n  scale: -5\n"), 0644); err != nil {
		t.Fatalf("writing table: %v", err)
	}
	if _, err := LoadTable(bad); err == nil {
		t.Error("expected error for negative scale")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("[]\n"), 0644); err != nil {
		t.Fatalf("writing table: %v", err)
	}
	if _, err := LoadTable(empty); err == nil {
		t.Error("expected error for empty table")
	}
}
