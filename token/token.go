package token

import "fmt"

// Token represents a single numeric literal found in page text. Tokens are
// immutable once created; Raw preserves the literal's original spelling for
// diagnostics while Value holds its interpretation with separators and
// currency symbols removed.
type Token struct {
	Raw       string  // original spelling, e.g. "$1,234.56"
	Value     float64 // parsed value, e.g. 1234.56
	Start     int     // byte offset of the literal in the cleaned page text
	End       int     // byte offset one past the literal
	PageIndex int     // 0-based page the literal was found on
	Percent   bool    // literal carried a trailing percent sign
	Currency  bool    // literal carried a currency symbol
}

// String returns a compact description of the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("%q=%v@%d:%d(p%d)", t.Raw, t.Value, t.Start, t.End, t.PageIndex)
}
