// Package token scans page text for numeric literals.
//
// The tokenizer recognizes the number formats that commonly survive PDF text
// extraction: plain integers, decimals, comma-grouped thousands, percentages,
// currency amounts, and parenthetical figures. Each match is returned as a
// [Token] carrying the original spelling, the parsed value, and the character
// span it occupied, so later stages can correlate it with nearby qualifier
// phrases.
//
// Go's RE2 engine has no lookbehind or lookahead, so overlapping formats are
// disambiguated the same way the patterns are listed: in priority order, with
// any match that overlaps an already-claimed span discarded. "1,250" is
// claimed whole by the comma-grouped pattern before the bare-integer pattern
// can see "1" or "250".
//
// Two exclusion heuristics guard against the most common false positives in
// paginated documents, both on by default:
//
//   - a short bare integer sitting alone on the final non-blank line of the
//     page, or immediately labeled "page"/"p.", is treated as a page number;
//   - a one- or two-digit integer in brackets or parentheses attached
//     directly to the preceding word is treated as a footnote marker.
//
// Malformed numeric text is skipped silently; extracted PDF text is noisy by
// nature and an unparsable match is not an error.
package token
