// Package textclean prepares raw page text for numeric scanning.
//
// Text pulled out of a PDF is noisy: ligatures and full-width digits from
// embedded fonts, numbers glued to the words around them, and thousands
// separators split across soft line breaks. Clean repairs these so that the
// downstream scanners see one well-formed stream of words and numbers.
//
// Offsets reported by the scanners refer to the cleaned text, not the
// original page bytes. Both the tokenizer and the qualifier detector must be
// run over the same cleaned string for their spans to be comparable.
package textclean

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

var (
	crlf        = regexp.MustCompile(`\r\n?`)
	splitGroup  = regexp.MustCompile(`(\d),[ \t]*\n[ \t]*(\d{3})`)
	digitLetter = regexp.MustCompile(`(\d)([A-Za-z])`)
	letterDigit = regexp.MustCompile(`([A-Za-z])(\d)`)
)

// Clean normalizes a page's extracted text for scanning. It applies Unicode
// NFKC normalization (folding full-width digits and ligatures to their plain
// forms), joins digit groups whose comma separator was split by a line break,
// and inserts a space between glued digit/letter runs so "1OPERATING" and
// "BUDGET2024" tokenize as separate words and numbers.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	s := norm.NFKC.String(text)
	s = crlf.ReplaceAllString(s, "\n")
	s = splitGroup.ReplaceAllString(s, "${1},${2}")
	s = digitLetter.ReplaceAllString(s, "${1} ${2}")
	s = letterDigit.ReplaceAllString(s, "${1} ${2}")

	return s
}
