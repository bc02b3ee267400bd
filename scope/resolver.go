// Package scope decides which magnitude qualifier governs each numeric
// token on a page.
//
// Natural-language scoping is inherently ambiguous: "(values in millions)"
// may be meant for one table or for the whole page. This package adopts an
// explicit policy rather than guessing table boundaries: a qualifier acts as
// a page-local magnitude mode switch. It governs every token that starts at
// or after the end of its phrase, until the next qualifier takes over.
// Tokens before the first qualifier are unscaled, and percent-flagged tokens
// are never scaled at all, since a percentage is already dimensionless.
package scope

import (
	"sort"

	"github.com/tsawler/pdfmax/qualifier"
	"github.com/tsawler/pdfmax/token"
)

// ScopedValue pairs a token with the qualifier that governs it, if any.
// Invariant: Value equals Token.Value times the qualifier's scale factor, or
// Token.Value alone when no qualifier applies.
type ScopedValue struct {
	Token     token.Token
	Qualifier *qualifier.Qualifier // nil when the token is unscaled
	Value     float64              // token value after scaling
}

// Scaled reports whether a qualifier was applied to the token.
func (s ScopedValue) Scaled() bool {
	return s.Qualifier != nil
}

// Resolve assigns a governing qualifier to each token of one page and
// returns one ScopedValue per token, preserving token order. Both slices
// must come from the same cleaned page text so their offsets are
// comparable.
func Resolve(tokens []token.Token, qualifiers []qualifier.Qualifier) []ScopedValue {
	if len(tokens) == 0 {
		return nil
	}

	quals := append([]qualifier.Qualifier(nil), qualifiers...)
	sort.Slice(quals, func(i, j int) bool {
		if quals[i].Start != quals[j].Start {
			return quals[i].Start < quals[j].Start
		}
		// Identical start offsets: the larger factor wins so
		// ambiguity never silently under-scales.
		return quals[i].Scale > quals[j].Scale
	})

	out := make([]ScopedValue, 0, len(tokens))
	next := 0
	var active *qualifier.Qualifier

	for _, tok := range tokens {
		// Advance the mode switch past every qualifier whose phrase
		// ends before this token begins. Qualifiers sharing a start
		// offset are skipped as a group; the first (largest scale)
		// becomes active.
		for next < len(quals) && quals[next].End <= tok.Start {
			q := quals[next]
			active = &q
			for next < len(quals) && quals[next].Start == q.Start {
				next++
			}
		}

		sv := ScopedValue{Token: tok, Value: tok.Value}
		if active != nil && !tok.Percent {
			sv.Qualifier = active
			sv.Value = tok.Value * active.Scale
		}
		out = append(out, sv)
	}

	return out
}
