package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/respell/internal/lexis"
	"github.com/jward/respell/internal/table"
)

func testTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.Build([]table.CanonicalEntry{
		{Canonical: "previous", Typos: []string{"previuos", "previuous"}},
		{Canonical: "beginning", Typos: []string{"begining", "beginign"}},
		{Canonical: "statement", Typos: []string{"statment"}},
	})
	require.NoError(t, err)
	return tbl
}

// identStream builds a stream of Identifier tokens, one per line.
func identStream(names ...string) []lexis.Token {
	tokens := make([]lexis.Token, len(names))
	for i, name := range names {
		tokens[i] = lexis.Token{Text: name, Kind: lexis.Identifier, Line: i + 1, Col: 1}
	}
	return tokens
}

func tokenTexts(tokens []lexis.Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

func TestRewrite_CorrectsKnownTypos(t *testing.T) {
	t.Parallel()
	tbl := testTable(t)
	in := identStream("previuos", "begining", "previuos", "statment")

	res := Rewrite(in, tbl)

	assert.Equal(t, []string{"previous", "beginning", "previous", "statement"}, tokenTexts(res.Tokens))
	require.Len(t, res.Changes, 4)
	assert.Equal(t, Change{Line: 1, Col: 1, Old: "previuos", New: "previous"}, res.Changes[0])
	assert.Equal(t, Change{Line: 2, Col: 1, Old: "begining", New: "beginning"}, res.Changes[1])
	assert.Equal(t, Change{Line: 3, Col: 1, Old: "previuos", New: "previous"}, res.Changes[2])
	assert.Equal(t, Change{Line: 4, Col: 1, Old: "statment", New: "statement"}, res.Changes[3])
}

func TestRewrite_NoMatches(t *testing.T) {
	t.Parallel()
	tbl := testTable(t)
	in := identStream("previous", "unrelated")

	res := Rewrite(in, tbl)

	assert.Empty(t, res.Changes)
	assert.Equal(t, in, res.Tokens)
}

func TestRewrite_Idempotent(t *testing.T) {
	t.Parallel()
	tbl := testTable(t)
	in := identStream("previuos", "begining", "clean", "statment")

	first := Rewrite(in, tbl)
	require.Len(t, first.Changes, 3)

	second := Rewrite(first.Tokens, tbl)
	assert.Empty(t, second.Changes)
	assert.Equal(t, first.Tokens, second.Tokens)
}

func TestRewrite_OtherKindPassesThrough(t *testing.T) {
	t.Parallel()
	tbl := testTable(t)
	// A known misspelling inside, say, a string literal arrives as an
	// Other token and must survive untouched.
	in := []lexis.Token{
		{Text: `"previuos"`, Kind: lexis.Other, Line: 1, Col: 1},
		{Text: "previuos", Kind: lexis.Other, Line: 2, Col: 1},
	}

	res := Rewrite(in, tbl)

	assert.Empty(t, res.Changes)
	assert.Equal(t, in, res.Tokens)
}

func TestRewrite_UnknownKindPassesThrough(t *testing.T) {
	t.Parallel()
	tbl := testTable(t)
	in := []lexis.Token{{Text: "previuos", Kind: lexis.TokenKind(42), Line: 1, Col: 1}}

	res := Rewrite(in, tbl)

	assert.Empty(t, res.Changes)
	assert.Equal(t, "previuos", res.Tokens[0].Text)
}

func TestRewrite_ZeroValueTokenInert(t *testing.T) {
	t.Parallel()
	tbl := testTable(t)
	in := []lexis.Token{{Text: "previuos"}} // unset kind is Other

	res := Rewrite(in, tbl)

	assert.Empty(t, res.Changes)
	assert.Equal(t, "previuos", res.Tokens[0].Text)
}

func TestRewrite_InputNotMutated(t *testing.T) {
	t.Parallel()
	tbl := testTable(t)
	in := identStream("previuos")

	res := Rewrite(in, tbl)

	assert.Equal(t, "previuos", in[0].Text)
	assert.Equal(t, "previous", res.Tokens[0].Text)
}

func TestRewrite_PreservesStreamShape(t *testing.T) {
	t.Parallel()
	tbl := testTable(t)
	in := []lexis.Token{
		{Text: "var ", Kind: lexis.Other, Line: 1, Col: 1},
		{Text: "previuos", Kind: lexis.Identifier, Line: 1, Col: 5},
		{Text: " = ", Kind: lexis.Other, Line: 1, Col: 13},
		{Text: "begining", Kind: lexis.Identifier, Line: 1, Col: 16},
		{Text: "()\n", Kind: lexis.Other, Line: 1, Col: 24},
	}

	res := Rewrite(in, tbl)

	// Same token count, same kinds, same positions; only texts of the two
	// matching identifiers differ.
	require.Len(t, res.Tokens, len(in))
	for i := range in {
		assert.Equal(t, in[i].Kind, res.Tokens[i].Kind, "kind at %d", i)
		assert.Equal(t, in[i].Line, res.Tokens[i].Line, "line at %d", i)
		assert.Equal(t, in[i].Col, res.Tokens[i].Col, "col at %d", i)
	}
	assert.Equal(t, []string{"var ", "previous", " = ", "beginning", "()\n"}, tokenTexts(res.Tokens))
	require.Len(t, res.Changes, 2)
}

func TestRewrite_EmptyStream(t *testing.T) {
	t.Parallel()
	tbl := testTable(t)

	res := Rewrite(nil, tbl)

	assert.Empty(t, res.Tokens)
	assert.Empty(t, res.Changes)
}
