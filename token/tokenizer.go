package token

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// patternKind distinguishes match formats that need different normalization
// or exclusion treatment.
type patternKind int

const (
	kindCurrency patternKind = iota
	kindParenthetical
	kindGrouped
	kindPercent
	kindDecimal
	kindInteger
)

// numberPattern pairs a compiled regex with its format kind. Patterns are
// tried in slice order; earlier patterns claim their spans first.
type numberPattern struct {
	kind    patternKind
	pattern *regexp.Regexp
}

// Patterns mirror the formats extracted PDF text actually contains. Order
// matters: currency and comma-grouped forms must claim "1,234.56" before the
// decimal and integer patterns can split it apart.
var numberPatterns = []numberPattern{
	{kindCurrency, regexp.MustCompile(`[$€£]\s*\d{1,3}(?:,\d{3})*(?:\.\d+)?`)},
	{kindParenthetical, regexp.MustCompile(`\(\s*\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*\)`)},
	{kindGrouped, regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+(?:\.\d+)?\b`)},
	{kindPercent, regexp.MustCompile(`\b\d+(?:\.\d+)?%`)},
	{kindDecimal, regexp.MustCompile(`\b\d+\.\d+\b`)},
	{kindDecimal, regexp.MustCompile(`\.\d+\b`)},
	{kindInteger, regexp.MustCompile(`\b\d+\b`)},
}

// Tokenizer scans page text for numeric literals. The zero value applies no
// exclusion heuristics; New returns one with the default heuristics enabled.
// A Tokenizer is stateless and safe for concurrent use.
type Tokenizer struct {
	ExcludePageNumbers bool // drop footer and "page N" style integers
	ExcludeFootnotes   bool // drop attached footnote markers like "word(3)"
}

// New returns a Tokenizer with the default exclusion heuristics enabled.
func New() *Tokenizer {
	return &Tokenizer{
		ExcludePageNumbers: true,
		ExcludeFootnotes:   true,
	}
}

// Tokenize scans text (already cleaned by textclean.Clean) and returns every
// numeric literal in order of appearance. The same text always yields the
// same token sequence. Malformed matches are skipped, not reported.
func (tk *Tokenizer) Tokenize(pageIndex int, text string) []Token {
	if text == "" {
		return nil
	}

	claimed := make([]bool, len(text))
	var tokens []Token

	for _, np := range numberPatterns {
		for _, span := range np.pattern.FindAllStringIndex(text, -1) {
			start, end := span[0], span[1]
			if overlaps(claimed, start, end) {
				continue
			}

			raw := text[start:end]
			value, ok := parseLiteral(raw, np.kind)
			if !ok {
				continue
			}

			// A leading minus is honored only when it is not part of a
			// range or date like "2024-08".
			if negated, newStart := leadingSign(text, start, np.kind); negated {
				start = newStart
				raw = text[start:end]
				value = -value
			}

			tok := Token{
				Raw:       raw,
				Value:     value,
				Start:     start,
				End:       end,
				PageIndex: pageIndex,
				Percent:   np.kind == kindPercent,
				Currency:  np.kind == kindCurrency,
			}

			if tk.excluded(text, tok, np.kind) {
				claim(claimed, start, end)
				continue
			}

			claim(claimed, start, end)
			tokens = append(tokens, tok)
		}
	}

	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Start < tokens[j].Start })
	return tokens
}

// parseLiteral normalizes a raw match to its numeric value. It strips
// currency symbols, grouping commas, parentheses and the percent sign; the
// percent sign is metadata only and does not divide the value.
func parseLiteral(raw string, kind patternKind) (float64, bool) {
	cleaned := strings.TrimSpace(raw)

	switch kind {
	case kindPercent:
		cleaned = strings.TrimSuffix(cleaned, "%")
	case kindCurrency:
		cleaned = strings.TrimLeft(cleaned, "$€£ \t")
	case kindParenthetical:
		cleaned = strings.TrimPrefix(cleaned, "(")
		cleaned = strings.TrimSuffix(cleaned, ")")
		cleaned = strings.TrimSpace(cleaned)
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" || cleaned == "." {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// leadingSign reports whether the character before start is a minus sign
// acting as a negation, and if so the new start offset including it. A minus
// glued to a preceding letter or digit ("2024-08", "x-5") is a separator,
// not a sign.
func leadingSign(text string, start int, kind patternKind) (bool, int) {
	if kind == kindParenthetical {
		return false, start
	}
	if start == 0 || text[start-1] != '-' {
		return false, start
	}
	if start >= 2 && isWordByte(text[start-2]) {
		return false, start
	}
	return true, start - 1
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func overlaps(claimed []bool, start, end int) bool {
	for i := start; i < end && i < len(claimed); i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func claim(claimed []bool, start, end int) {
	for i := start; i < end && i < len(claimed); i++ {
		claimed[i] = true
	}
}
