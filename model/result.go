package model

import (
	"github.com/tsawler/pdfmax/scope"
	"github.com/tsawler/pdfmax/token"
)

// PageResult holds the maxima found on a single page. A page with no tokens
// has both maxima nil. Read-only once created.
type PageResult struct {
	PageIndex  int                // 0-based page index
	MaxRaw     *token.Token       // largest bare literal, nil if none
	MaxScaled  *scope.ScopedValue // largest value after scaling, nil if none
	TokenCount int                // number of tokens found on the page
}

// Empty reports whether the page contributed no tokens.
func (p PageResult) Empty() bool {
	return p.MaxRaw == nil
}

// DocumentResult is the final output of extraction: the largest bare
// literal and the largest scaled value across all pages, with the 1-based
// pages they came from and summary statistics.
type DocumentResult struct {
	MaxRaw        float64 // largest bare numeric literal in the document
	MaxRawPage    int     // 1-based page the raw maximum came from
	MaxScaled     float64 // largest value after magnitude scaling
	MaxScaledPage int     // 1-based page the scaled maximum came from

	PagesProcessed   int // pages whose text was scanned
	PagesWithNumbers int // pages that contributed at least one token
	TokensFound      int // total numeric tokens across all pages
}

// AggregatePage reduces one page's scoped values to that page's maxima.
// Ties are broken by first occurrence: a later equal value never replaces
// an earlier one.
func AggregatePage(pageIndex int, values []scope.ScopedValue) PageResult {
	result := PageResult{PageIndex: pageIndex, TokenCount: len(values)}

	for i := range values {
		sv := values[i]
		if result.MaxRaw == nil || sv.Token.Value > result.MaxRaw.Value {
			t := sv.Token
			result.MaxRaw = &t
		}
		if result.MaxScaled == nil || sv.Value > result.MaxScaled.Value {
			v := sv
			result.MaxScaled = &v
		}
	}

	return result
}

// AggregateDocument folds the ordered page results into the document-level
// maxima. Pages must be supplied in page order so that ties resolve to the
// earliest page. If no page contributed a token it returns
// *EmptyDocumentError.
func AggregateDocument(pages []PageResult) (DocumentResult, error) {
	result := DocumentResult{PagesProcessed: len(pages)}

	var maxRaw *token.Token
	var maxScaled *scope.ScopedValue

	for _, page := range pages {
		result.TokensFound += page.TokenCount
		if page.Empty() {
			continue
		}
		result.PagesWithNumbers++

		if maxRaw == nil || page.MaxRaw.Value > maxRaw.Value {
			maxRaw = page.MaxRaw
			result.MaxRawPage = page.PageIndex + 1
		}
		if maxScaled == nil || page.MaxScaled.Value > maxScaled.Value {
			maxScaled = page.MaxScaled
			result.MaxScaledPage = page.PageIndex + 1
		}
	}

	if maxRaw == nil {
		return DocumentResult{}, &EmptyDocumentError{Pages: len(pages)}
	}

	result.MaxRaw = maxRaw.Value
	result.MaxScaled = maxScaled.Value
	return result, nil
}
