package pdfmax

import "github.com/tsawler/pdfmax/qualifier"

// ExtractOptions holds configuration for number extraction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Concurrency: number of page workers, 0 means automatic
	workers int

	// Qualifier table; nil means qualifier.DefaultTable()
	table qualifier.Table

	// Tokenizer heuristics
	includePageNumbers bool // keep footer/"page N" integers
	includeFootnotes   bool // keep attached footnote markers
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:              nil, // nil means all pages
		workers:            0,   // automatic
		table:              nil, // built-in magnitude table
		includePageNumbers: false,
		includeFootnotes:   false,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		workers:            o.workers,
		includePageNumbers: o.includePageNumbers,
		includeFootnotes:   o.includeFootnotes,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.table != nil {
		newOpts.table = make(qualifier.Table, len(o.table))
		copy(newOpts.table, o.table)
	}

	return newOpts
}
