package respell

import (
	"context"

	"github.com/jward/respell/internal/lexis"
	"github.com/jward/respell/internal/rewrite"
	"github.com/jward/respell/internal/table"
)

// Build validates entries and constructs an immutable Table. It fails
// with a *ConfigError when an entry has an empty typo set, a typo equals
// a canonical name, or two entries claim the same typo.
func Build(entries []CanonicalEntry) (*Table, error) {
	return table.Build(entries)
}

// LoadTable reads a YAML table file (canonical name to list of typos) and
// builds a Table from it.
func LoadTable(path string) (*Table, error) {
	return table.Load(path)
}

// ParseTable builds a Table from raw YAML bytes.
func ParseTable(raw []byte) (*Table, error) {
	return table.Parse(raw)
}

// Rewrite applies tbl to a token stream: Identifier tokens matching a
// known misspelling get the canonical spelling and a Change record, all
// other tokens pass through unchanged. The input slice is not mutated.
func Rewrite(tokens []Token, tbl *Table) Result {
	return rewrite.Rewrite(tokens, tbl)
}

// Tokenize parses src with the tree-sitter grammar for lang and returns
// the token partition of the source. Concatenating the token texts (see
// Render) reproduces src exactly.
func Tokenize(ctx context.Context, src []byte, lang string) ([]Token, error) {
	return lexis.Tokenize(ctx, src, lang)
}

// Render concatenates token texts back into source bytes.
func Render(tokens []Token) []byte {
	return lexis.Render(tokens)
}

// LanguageForFile returns the canonical language name for a file path
// based on its extension. Returns ("", false) for unknown extensions.
func LanguageForFile(path string) (string, bool) {
	return lexis.LanguageForFile(path)
}
