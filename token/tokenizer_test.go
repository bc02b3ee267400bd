package token

import (
	"reflect"
	"testing"
)

// values is a test helper that tokenizes text and returns just the parsed
// values in order of appearance.
func values(t *testing.T, text string) []float64 {
	t.Helper()
	tokens := New().Tokenize(0, text)
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Value)
	}
	return out
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := New().Tokenize(0, ""); tokens != nil {
		t.Errorf("expected no tokens, got %v", tokens)
	}
	if tokens := New().Tokenize(0, "no numbers here at all"); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestTokenizeBasicFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []float64
	}{
		{"integer", "there were 42 items", []float64{42}},
		{"decimal", "growth of 3.15 this year", []float64{3.15}},
		{"bare decimal", "a ratio of .75 observed", []float64{0.75}},
		{"comma grouped", "assets of 1,250 reported", []float64{1250}},
		{"grouped with decimal", "a total of 1,234,567.89 in cash", []float64{1234567.89}},
		{"currency", "paid $1,234.56 upfront", []float64{1234.56}},
		{"currency euro", "worth €2,500 at close", []float64{2500}},
		{"percent", "growth was 45% overall", []float64{45}},
		{"parenthetical", "a loss of (1,234) recorded", []float64{1234}},
		{"multiple", "3.15 then 1,250 then 7", []float64{3.15, 1250, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := values(t, tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenizeGroupedNumberNotSplit(t *testing.T) {
	tokens := New().Tokenize(0, "total 1,250 recorded")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Raw != "1,250" {
		t.Errorf("expected raw 1,250, got %q", tokens[0].Raw)
	}
	if tokens[0].Value != 1250 {
		t.Errorf("expected value 1250, got %v", tokens[0].Value)
	}
}

func TestTokenizePercentIsMetadataOnly(t *testing.T) {
	tokens := New().Tokenize(0, "growth was 45% this quarter")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %v", tokens)
	}
	// The percent sign is recorded but never divides the value.
	if tokens[0].Value != 45 {
		t.Errorf("expected value 45, got %v", tokens[0].Value)
	}
	if !tokens[0].Percent {
		t.Error("expected Percent flag set")
	}
}

func TestTokenizeCurrencyFlag(t *testing.T) {
	tokens := New().Tokenize(0, "paid $500 total")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %v", tokens)
	}
	if !tokens[0].Currency {
		t.Error("expected Currency flag set")
	}
	if tokens[0].Value != 500 {
		t.Errorf("expected 500, got %v", tokens[0].Value)
	}
}

func TestTokenizeNegativeSign(t *testing.T) {
	got := values(t, "a swing of -12.5 in margin")
	if !reflect.DeepEqual(got, []float64{-12.5}) {
		t.Errorf("got %v", got)
	}

	// A minus glued to a preceding digit is a separator, not a sign.
	got = values(t, "period 2024-08 ended")
	if !reflect.DeepEqual(got, []float64{2024, 8}) {
		t.Errorf("expected date parts unsigned, got %v", got)
	}
}

func TestTokenizeOffsets(t *testing.T) {
	text := "x 3.15 y"
	tokens := New().Tokenize(0, text)
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %v", tokens)
	}
	if text[tokens[0].Start:tokens[0].End] != "3.15" {
		t.Errorf("span %d:%d does not cover the literal", tokens[0].Start, tokens[0].End)
	}
	if tokens[0].Raw != "3.15" {
		t.Errorf("raw %q", tokens[0].Raw)
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	text := "Revenue was 3.15 in millions of dollars, total assets 1,250 and 45% growth"
	first := New().Tokenize(3, text)
	second := New().Tokenize(3, text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("tokenizing twice differed:\n%v\n%v", first, second)
	}
}

func TestTokenizePageIndexRecorded(t *testing.T) {
	tokens := New().Tokenize(7, "value 9")
	if len(tokens) != 1 || tokens[0].PageIndex != 7 {
		t.Errorf("expected page index 7, got %v", tokens)
	}
}

func TestExcludeFooterPageNumber(t *testing.T) {
	// The trailing footer number is larger than anything in the body and
	// must still not surface as a token.
	text := "Total expenses were 120 this year.\n9999"
	got := values(t, text)
	if !reflect.DeepEqual(got, []float64{120}) {
		t.Errorf("footer number not excluded: %v", got)
	}

	// Decorated footer: "- 12 -".
	text = "Body value 55.\n- 12 -"
	got = values(t, text)
	if !reflect.DeepEqual(got, []float64{55}) {
		t.Errorf("decorated footer not excluded: %v", got)
	}
}

func TestFooterHeuristicNeedsLineStructure(t *testing.T) {
	// On a single-line page a trailing number is ordinary content.
	got := values(t, "(in millions) Revenue 3.15, Assets 1250")
	if !reflect.DeepEqual(got, []float64{3.15, 1250}) {
		t.Errorf("single-line trailing number wrongly excluded: %v", got)
	}
}

func TestFooterHeuristicOnlyTrailing(t *testing.T) {
	// A lone number on its own line mid-page is kept.
	got := values(t, "heading\n500\nmore text follows")
	if !reflect.DeepEqual(got, []float64{500}) {
		t.Errorf("mid-page number wrongly excluded: %v", got)
	}
}

func TestExcludeLabeledPageNumber(t *testing.T) {
	got := values(t, "see page 12 for details, total 99")
	if !reflect.DeepEqual(got, []float64{99}) {
		t.Errorf("labeled page number not excluded: %v", got)
	}

	got = values(t, "continued on p. 7, balance 400")
	if !reflect.DeepEqual(got, []float64{400}) {
		t.Errorf("p. abbreviation not excluded: %v", got)
	}

	// "rampage 12" is not a page reference.
	got = values(t, "the rampage 12 years ago")
	if !reflect.DeepEqual(got, []float64{12}) {
		t.Errorf("non-page word wrongly triggered exclusion: %v", got)
	}
}

func TestExcludeFootnoteMarkers(t *testing.T) {
	got := values(t, "revenue(3) was 800 overall")
	if !reflect.DeepEqual(got, []float64{800}) {
		t.Errorf("attached parenthetical footnote not excluded: %v", got)
	}

	got = values(t, "assets[12] totaled 900")
	if !reflect.DeepEqual(got, []float64{900}) {
		t.Errorf("bracketed footnote not excluded: %v", got)
	}

	// A free-standing accounting figure in parentheses is kept.
	got = values(t, "a charge of (1,234) was taken")
	if !reflect.DeepEqual(got, []float64{1234}) {
		t.Errorf("accounting parenthetical wrongly excluded: %v", got)
	}
}

func TestExclusionsCanBeDisabled(t *testing.T) {
	tk := &Tokenizer{}
	tokens := tk.Tokenize(0, "body 120\n9999")
	if len(tokens) != 2 {
		t.Fatalf("expected both tokens with heuristics off, got %v", tokens)
	}
	if tokens[1].Value != 9999 {
		t.Errorf("expected footer value kept, got %v", tokens[1].Value)
	}
}

func TestMalformedNumbersSkipped(t *testing.T) {
	// A huge digit run overflows float parsing gracefully or parses to
	// +Inf; either way nothing panics and scanning continues.
	got := values(t, "ok 5 and more 6")
	if !reflect.DeepEqual(got, []float64{5, 6}) {
		t.Errorf("got %v", got)
	}
}
