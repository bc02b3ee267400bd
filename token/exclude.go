package token

import "strings"

// maxPageNumberDigits bounds how long a bare integer can be and still look
// like a page number.
const maxPageNumberDigits = 4

// excluded applies the enabled exclusion heuristics to a candidate token.
func (tk *Tokenizer) excluded(text string, tok Token, kind patternKind) bool {
	if tk.ExcludePageNumbers && (isFooterPageNumber(text, tok, kind) || isLabeledPageNumber(text, tok, kind)) {
		return true
	}
	if tk.ExcludeFootnotes && isFootnoteMarker(text, tok, kind) {
		return true
	}
	return false
}

// isFooterPageNumber reports whether tok is a short bare integer sitting
// alone on the final non-blank line of the page, the usual spot for a page
// footer number. A single-line page never triggers this heuristic: with no
// line structure there is no footer position to speak of.
func isFooterPageNumber(text string, tok Token, kind patternKind) bool {
	if kind != kindInteger {
		return false
	}
	if tok.Value < 0 || tok.End-tok.Start > maxPageNumberDigits {
		return false
	}

	// Nothing but whitespace may follow the token.
	if strings.TrimSpace(text[tok.End:]) != "" {
		return false
	}

	// The token must start a line of its own, allowing "- 12 -" style
	// decoration around it.
	lineStart := strings.LastIndexByte(text[:tok.Start], '\n')
	if lineStart < 0 {
		return false
	}
	prefix := strings.TrimSpace(text[lineStart+1 : tok.Start])
	return prefix == "" || prefix == "-" || prefix == "–"
}

// isLabeledPageNumber reports whether tok is an integer immediately preceded
// by the word "page" or the abbreviation "p.", as in "Page 12".
func isLabeledPageNumber(text string, tok Token, kind patternKind) bool {
	if kind != kindInteger {
		return false
	}

	before := strings.ToLower(strings.TrimRight(text[:tok.Start], " \t"))
	if strings.HasSuffix(before, "p.") {
		return true
	}
	if !strings.HasSuffix(before, "page") {
		return false
	}
	rest := before[:len(before)-len("page")]
	return rest == "" || !isLetterByte(rest[len(rest)-1])
}

// isFootnoteMarker reports whether tok is a small integer in brackets or
// parentheses attached directly to the preceding word, like "revenue(3)" or
// "assets[12]".
func isFootnoteMarker(text string, tok Token, kind patternKind) bool {
	switch kind {
	case kindParenthetical:
		// "(1,234)" style accounting figures carry separators or
		// decimals and are kept; a plain one- or two-digit value is a
		// footnote marker when glued to a word.
		inner := strings.TrimSpace(strings.Trim(tok.Raw, "()"))
		if len(inner) > 2 || strings.ContainsAny(inner, ",.") {
			return false
		}
		return tok.Start > 0 && isLetterByte(text[tok.Start-1])

	case kindInteger:
		if tok.End-tok.Start > 2 {
			return false
		}
		if tok.Start == 0 || tok.End >= len(text) {
			return false
		}
		opening, closing := text[tok.Start-1], text[tok.End]
		bracketed := (opening == '[' && closing == ']') || (opening == '(' && closing == ')')
		if !bracketed {
			return false
		}
		return tok.Start >= 2 && isLetterByte(text[tok.Start-2])
	}

	return false
}

func isLetterByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
