package reader

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tsawler/pdfmax/format"
)

// backend abstracts the PDF library actually producing page text.
type backend interface {
	// name identifies the backend for diagnostics.
	name() string
	// pageCount returns the number of pages the backend sees.
	pageCount() int
	// pageText returns the plain text of a 0-based page.
	pageText(pageIndex int) (string, error)
	// close releases backend resources.
	close() error
}

// Reader reads per-page plain text from a PDF file.
type Reader struct {
	filename  string
	backend   backend
	pageCount int
}

// Open opens a PDF file for page-text extraction. It verifies the file is a
// PDF, opens it with the primary backend (falling back to the secondary when
// the primary cannot parse the file), and cross-checks the page count with
// pdfcpu. The Reader must be closed when done.
func Open(filename string) (*Reader, error) {
	f, err := format.DetectFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	if f != format.PDF {
		return nil, fmt.Errorf("%s: not a PDF file", filename)
	}

	b, err := openLedongthuc(filename)
	if err != nil {
		var fallbackErr error
		b, fallbackErr = openDslipak(filename)
		if fallbackErr != nil {
			return nil, fmt.Errorf("opening %s: %w (fallback: %v)", filename, err, fallbackErr)
		}
	}

	count := b.pageCount()

	// pdfcpu validates structure more strictly than the text backends;
	// when it reports a smaller positive count, trailing pages are
	// damaged and reading them would fail anyway.
	if cpuCount, err := api.PageCountFile(filename); err == nil && cpuCount > 0 && cpuCount < count {
		count = cpuCount
	}

	return &Reader{
		filename:  filename,
		backend:   b,
		pageCount: count,
	}, nil
}

// Close releases the underlying file. It is safe to call Close multiple
// times.
func (r *Reader) Close() error {
	if r.backend == nil {
		return nil
	}
	err := r.backend.close()
	r.backend = nil
	return err
}

// Filename returns the path the Reader was opened with.
func (r *Reader) Filename() string {
	return r.filename
}

// Backend returns the name of the backend producing page text.
func (r *Reader) Backend() string {
	if r.backend == nil {
		return ""
	}
	return r.backend.name()
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pageCount
}

// PageText returns the plain text of the given 0-based page. A panic inside
// the backend is returned as an error for that page only.
func (r *Reader) PageText(pageIndex int) (text string, err error) {
	if r.backend == nil {
		return "", fmt.Errorf("reader is closed")
	}
	if pageIndex < 0 || pageIndex >= r.pageCount {
		return "", fmt.Errorf("page index %d out of range [0, %d)", pageIndex, r.pageCount)
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s: panic reading page %d: %v", r.backend.name(), pageIndex+1, rec)
		}
	}()

	return r.backend.pageText(pageIndex)
}
