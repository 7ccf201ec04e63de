// Package rewrite implements the correction pass: a single stateless
// traversal of a token stream that substitutes known misspellings with
// their canonical spelling. Tokens are never reordered, inserted, or
// deleted; only the text of matching Identifier tokens changes.
package rewrite

import (
	"github.com/jward/respell/internal/lexis"
	"github.com/jward/respell/internal/table"
)

// Change records one substitution made during a rewrite pass, positioned
// at the rewritten token's first byte.
type Change struct {
	Line int
	Col  int
	Old  string
	New  string
}

// Result is the output of one rewrite pass.
type Result struct {
	Tokens  []lexis.Token
	Changes []Change // in position order
}

// Rewrite applies tbl to tokens. Identifier tokens whose text is a known
// misspelling get the canonical spelling in the returned stream and a
// Change record; everything else (Other tokens, unmatched identifiers,
// tokens with an unrecognized kind) passes through unchanged. The input
// slice is not mutated.
//
// Rewrite is total and idempotent: it cannot fail given a table built by
// the table package, and applying it to its own output yields no changes,
// since Build rejects tables where a canonical name is also a typo.
func Rewrite(tokens []lexis.Token, tbl *table.Table) Result {
	out := make([]lexis.Token, len(tokens))
	copy(out, tokens)

	var changes []Change
	for i := range out {
		tok := &out[i]
		if tok.Kind != lexis.Identifier {
			continue
		}
		canonical, ok := tbl.Lookup(tok.Text)
		if !ok || canonical == tok.Text {
			continue
		}
		changes = append(changes, Change{Line: tok.Line, Col: tok.Col, Old: tok.Text, New: canonical})
		tok.Text = canonical
	}
	return Result{Tokens: out, Changes: changes}
}
