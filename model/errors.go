package model

import "fmt"

// EmptyDocumentError reports that no page of the document contained a
// numeric token, so no maximum can be computed.
type EmptyDocumentError struct {
	Pages int // number of pages that were scanned
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no numeric values found in any of %d pages", e.Pages)
}

// InvalidPageTextError reports that text for one page could not be
// produced. The page contributes no tokens; other pages are unaffected.
type InvalidPageTextError struct {
	PageIndex int // 0-based index of the failing page
	Err       error
}

func (e *InvalidPageTextError) Error() string {
	return fmt.Sprintf("page %d: invalid page text: %v", e.PageIndex+1, e.Err)
}

func (e *InvalidPageTextError) Unwrap() error {
	return e.Err
}
