package pdfmax

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tsawler/pdfmax/internal/textclean"
	"github.com/tsawler/pdfmax/model"
	"github.com/tsawler/pdfmax/qualifier"
	"github.com/tsawler/pdfmax/reader"
	"github.com/tsawler/pdfmax/scope"
	"github.com/tsawler/pdfmax/token"
)

// Warning describes a non-fatal issue encountered during extraction, such
// as a page whose text could not be produced. Extraction succeeded but
// results may be incomplete.
type Warning struct {
	Page    int // 1-based page the warning concerns, 0 when document-wide
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}

// Extractor provides a fluent interface for finding the largest numeric
// value in a document. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	source   PageSource

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if source has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureSource opens the page source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.source = r
	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource {
		if closer, ok := e.source.(io.Closer); ok && closer != nil {
			err := closer.Close()
			e.source = nil
			e.ownsSource = false
			return err
		}
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to scan (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	result, _, err := pdfmax.Open("report.pdf").Pages(1, 3, 5).Result()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to scan (1-indexed, inclusive).
//
// Example:
//
//	result, _, err := pdfmax.Open("report.pdf").PageRange(5, 10).Result()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// Workers sets how many pages are processed concurrently. Zero selects an
// automatic value; one forces fully sequential processing. Pages are
// independent pure computations, so the result is identical either way.
//
// Example:
//
//	result, _, err := pdfmax.Open("report.pdf").Workers(4).Result()
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = n
	return newExt
}

// Qualifiers replaces the magnitude-phrase table used to detect qualifiers
// like "in millions". The table replaces the default entirely.
//
// Example:
//
//	table := append(qualifier.DefaultTable(), qualifier.Entry{Pattern: `crores?`, Scale: 1e7})
//	result, _, err := pdfmax.Open("report.pdf").Qualifiers(table).Result()
func (e *Extractor) Qualifiers(table qualifier.Table) *Extractor {
	newExt := e.clone()
	newExt.options.table = table
	return newExt
}

// QualifiersFromFile loads the magnitude-phrase table from a YAML file.
// A load failure surfaces on the next terminal operation.
//
// Example:
//
//	result, _, err := pdfmax.Open("report.pdf").QualifiersFromFile("scales.yaml").Result()
func (e *Extractor) QualifiersFromFile(path string) *Extractor {
	newExt := e.clone()
	table, err := qualifier.LoadTable(path)
	if err != nil {
		newExt.err = err
		return newExt
	}
	newExt.options.table = table
	return newExt
}

// IncludePageNumbers disables the page-number exclusion heuristics, so
// footer numbers and "page N" integers count as ordinary values.
func (e *Extractor) IncludePageNumbers() *Extractor {
	newExt := e.clone()
	newExt.options.includePageNumbers = true
	return newExt
}

// IncludeFootnotes disables the footnote-marker exclusion heuristic, so
// attached markers like "revenue(3)" count as ordinary values.
func (e *Extractor) IncludeFootnotes() *Extractor {
	newExt := e.clone()
	newExt.options.includeFootnotes = true
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Result scans the configured pages and returns the document-level maxima.
// This is a terminal operation that closes the underlying source.
//
// Returns the result, any warnings encountered during processing, and an
// error if extraction failed. A document without a single numeric token
// fails with *model.EmptyDocumentError; a page whose text could not be
// produced yields a warning and contributes no tokens.
//
// Example:
//
//	result, warnings, err := pdfmax.Open("report.pdf").Result()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfmax.FormatWarnings(warnings))
//	}
func (e *Extractor) Result() (model.DocumentResult, []Warning, error) {
	pageResults, warnings, err := e.PageResults()
	if err != nil {
		return model.DocumentResult{}, warnings, err
	}

	result, err := model.AggregateDocument(pageResults)
	if err != nil {
		return model.DocumentResult{}, warnings, err
	}
	return result, warnings, nil
}

// PageResults scans the configured pages and returns one PageResult per
// page in page order. This is a terminal operation that closes the
// underlying source.
//
// Example:
//
//	pages, warnings, err := pdfmax.Open("report.pdf").PageResults()
func (e *Extractor) PageResults() ([]model.PageResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	indices, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := e.newPipeline()
	if err != nil {
		return nil, nil, err
	}

	texts := e.fetchPageTexts(indices)
	results := e.processPages(pipeline, texts)

	return results, e.warnings, nil
}

// Tokens scans the configured pages and returns every numeric token found,
// in page then offset order. Useful for diagnostics. This is a terminal
// operation that closes the underlying source.
//
// Example:
//
//	tokens, warnings, err := pdfmax.Open("report.pdf").Tokens()
func (e *Extractor) Tokens() ([]token.Token, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	indices, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := e.newPipeline()
	if err != nil {
		return nil, nil, err
	}

	var all []token.Token
	for _, pt := range e.fetchPageTexts(indices) {
		cleaned := textclean.Clean(pt.text)
		all = append(all, pipeline.tokenizer.Tokenize(pt.index, cleaned)...)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].PageIndex != all[j].PageIndex {
			return all[i].PageIndex < all[j].PageIndex
		}
		return all[i].Start < all[j].Start
	})

	return all, e.warnings, nil
}

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the source, allowing further operations.
//
// Example:
//
//	ext := pdfmax.Open("report.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureSource(); err != nil {
		return 0, err
	}

	return e.source.PageCount(), nil
}

// ============================================================================
// Internal pipeline
// ============================================================================

// pipeline bundles the stateless per-page scanners, built once per terminal
// operation from the configured options.
type pipeline struct {
	tokenizer *token.Tokenizer
	detector  *qualifier.Detector
}

func (e *Extractor) newPipeline() (*pipeline, error) {
	tk := token.New()
	tk.ExcludePageNumbers = !e.options.includePageNumbers
	tk.ExcludeFootnotes = !e.options.includeFootnotes

	det, err := qualifier.NewDetector(e.options.table)
	if err != nil {
		return nil, err
	}

	return &pipeline{tokenizer: tk, detector: det}, nil
}

// processPage runs the full per-page pipeline: clean, tokenize, detect
// qualifiers, resolve scopes, reduce to the page maxima. Pure function of
// its inputs.
func (p *pipeline) processPage(pageIndex int, text string) model.PageResult {
	cleaned := textclean.Clean(text)
	tokens := p.tokenizer.Tokenize(pageIndex, cleaned)
	qualifiers := p.detector.Detect(pageIndex, cleaned)
	scoped := scope.Resolve(tokens, qualifiers)
	return model.AggregatePage(pageIndex, scoped)
}

// pageText pairs a page index with its extracted text. A page whose text
// could not be produced has ok=false and is already recorded as a warning.
type pageText struct {
	index int
	text  string
	ok    bool
}

// fetchPageTexts pulls text for each requested page from the source. Page
// sources are not assumed safe for concurrent use, so fetching is
// sequential; the CPU-bound scanning fans out afterwards. A failing page is
// recorded as a warning wrapping *model.InvalidPageTextError and does not
// abort the remaining pages.
func (e *Extractor) fetchPageTexts(indices []int) []pageText {
	texts := make([]pageText, 0, len(indices))
	for _, idx := range indices {
		text, err := e.source.PageText(idx)
		if err != nil {
			pageErr := &model.InvalidPageTextError{PageIndex: idx, Err: err}
			e.warnings = append(e.warnings, Warning{Page: idx + 1, Message: pageErr.Error()})
			texts = append(texts, pageText{index: idx})
			continue
		}
		texts = append(texts, pageText{index: idx, text: text, ok: true})
	}
	return texts
}

// processPages fans the fetched pages out to a bounded pool of workers and
// collects results in page order. Results are written to disjoint slice
// slots, so no locking is needed.
func (e *Extractor) processPages(p *pipeline, texts []pageText) []model.PageResult {
	results := make([]model.PageResult, len(texts))

	workers := e.options.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	process := func(i int) {
		pt := texts[i]
		if !pt.ok {
			results[i] = model.AggregatePage(pt.index, nil)
			return
		}
		results[i] = p.processPage(pt.index, pt.text)
	}

	if workers <= 1 {
		for i := range texts {
			process(i)
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				process(i)
			}
		}()
	}
	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// resolvePages converts the 1-indexed page selection to sorted, unique
// 0-based indices, defaulting to every page.
func (e *Extractor) resolvePages() ([]int, error) {
	count := e.source.PageCount()

	if len(e.options.pages) == 0 {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	seen := make(map[int]bool, len(e.options.pages))
	indices := make([]int, 0, len(e.options.pages))
	for _, page := range e.options.pages {
		if page < 1 || page > count {
			return nil, fmt.Errorf("page %d out of range [1, %d]", page, count)
		}
		if seen[page] {
			continue
		}
		seen[page] = true
		indices = append(indices, page-1)
	}

	sort.Ints(indices)
	return indices, nil
}
