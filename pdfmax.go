// Package pdfmax finds the largest numeric value in a PDF document.
//
// The document is processed page by page: each page's text is cleaned of
// extraction noise, scanned for numeric literals and for magnitude phrases
// like "in millions", and reduced to per-page maxima that fold into two
// document-level results — the largest bare literal, and the largest value
// after applying the magnitude scaling implied by nearby language.
//
// Basic usage:
//
//	result, warnings, err := pdfmax.Open("report.pdf").Result()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfmax.FormatWarnings(warnings))
//	}
//	fmt.Println(result.MaxRaw, result.MaxScaled)
//
// With options:
//
//	result, _, err := pdfmax.Open("report.pdf").
//	    Pages(1, 2, 3).
//	    Workers(4).
//	    Result()
//
// The pipeline consumes only per-page plain text, so any source of page
// strings can stand in for a PDF:
//
//	result, _, err := pdfmax.FromPages(
//	    "(in millions) Revenue 3.15, Assets 1250",
//	).Result()
package pdfmax

import (
	"github.com/tsawler/pdfmax/reader"
)

// PageSource supplies ordered per-page plain text. reader.Reader implements
// it for PDF files; tests and other front ends can supply their own.
type PageSource interface {
	// PageCount returns the number of pages available.
	PageCount() int
	// PageText returns the plain text of a 0-based page.
	PageText(pageIndex int) (string, error)
}

// Open prepares a PDF file for extraction and returns an Extractor for
// fluent configuration. The file is not opened until a terminal operation
// runs. The returned Extractor must be closed when done, either explicitly
// via Close() or implicitly by a terminal operation like Result().
//
// Example:
//
//	result, warnings, err := pdfmax.Open("report.pdf").Result()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// The caller remains responsible for closing the reader.
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		source:       r,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// FromSource creates an Extractor over any PageSource. Useful when page
// text comes from somewhere other than a PDF file.
func FromSource(src PageSource) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// FromPages creates an Extractor over literal page strings, one string per
// page. This is the text-only entry point; no PDF is involved.
//
// Example:
//
//	result, _, err := pdfmax.FromPages("page one 42", "page two 7").Result()
func FromPages(pages ...string) *Extractor {
	return FromSource(pageSlice(pages))
}

// pageSlice adapts a []string to the PageSource interface.
type pageSlice []string

func (p pageSlice) PageCount() int {
	return len(p)
}

func (p pageSlice) PageText(pageIndex int) (string, error) {
	return p[pageIndex], nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdfmax.Must(pdfmax.Open("report.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation and panics if the
// error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	result := pdfmax.MustResult(pdfmax.Open("report.pdf").Result())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
