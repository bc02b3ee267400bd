// Package reader supplies per-page plain text from a PDF file.
//
// The extraction pipeline never parses PDF bytes itself; this package is
// the collaborator that turns a file into an ordered sequence of page
// texts. It wraps github.com/ledongthuc/pdf as the primary backend, falls
// back to github.com/dslipak/pdf when the primary cannot open a file, and
// cross-checks the page count with pdfcpu, which is stricter about
// structural damage than either text backend.
//
// Backends occasionally panic on malformed content streams; PageText
// converts such panics into errors so one bad page never takes down the
// extraction of the rest of the document.
package reader
