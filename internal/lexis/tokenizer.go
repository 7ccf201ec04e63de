// Package lexis turns source text into the flat token stream the rewrite
// pass consumes. It parses with tree-sitter and partitions the source into
// identifier leaves and the gaps between them, so that concatenating the
// token texts reproduces the input byte for byte.
package lexis

import (
	"bytes"
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// TokenKind tags a token as rewritable or inert. The zero value is Other,
// so a zero-valued Token passes through the rewrite untouched.
type TokenKind int

const (
	// Other covers keywords, operators, whitespace, string and comment
	// text, and anything else that is not an identifier.
	Other TokenKind = iota

	// Identifier marks a token eligible for typo correction.
	Identifier
)

// Token is one lexical unit of a source text. Line and Col are 1-based
// and refer to the token's first byte; Col counts bytes, not runes.
type Token struct {
	Text string
	Kind TokenKind
	Line int
	Col  int
}

// Tokenize parses src with the tree-sitter grammar for lang and returns
// the token partition of the source: identifier leaves tagged Identifier,
// everything between them collapsed into Other tokens, in source order.
// Returns an error for unsupported languages or a parser failure.
func Tokenize(ctx context.Context, src []byte, lang string) ([]Token, error) {
	grammar, ok := grammarFor(lang)
	if !ok {
		return nil, fmt.Errorf("tokenize: unsupported language %q", lang)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tokenize: parse %s source: %w", lang, err)
	}
	defer tree.Close()

	spans := collectIdentifiers(tree.RootNode(), identifierNodeTypes[lang], nil)
	return partition(src, spans), nil
}

// span is a half-open byte range [start, end) of one identifier leaf.
type span struct {
	start uint32
	end   uint32
}

// collectIdentifiers walks the tree depth-first and appends the byte span
// of every leaf whose node type is in kinds. Leaves come back in source
// order and never overlap.
func collectIdentifiers(n *sitter.Node, kinds map[string]bool, out []span) []span {
	count := int(n.ChildCount())
	if count == 0 {
		if kinds[n.Type()] && n.EndByte() > n.StartByte() {
			out = append(out, span{start: n.StartByte(), end: n.EndByte()})
		}
		return out
	}
	for i := 0; i < count; i++ {
		out = collectIdentifiers(n.Child(i), kinds, out)
	}
	return out
}

// partition slices src into alternating Other/Identifier tokens along the
// identifier spans, tracking line/column across the whole source so every
// token carries an accurate position.
func partition(src []byte, spans []span) []Token {
	var tokens []Token
	line, col := 1, 1

	emit := func(start, end uint32, kind TokenKind) {
		if start >= end {
			return
		}
		text := string(src[start:end])
		tokens = append(tokens, Token{Text: text, Kind: kind, Line: line, Col: col})
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
	}

	var pos uint32
	for _, s := range spans {
		emit(pos, s.start, Other)
		emit(s.start, s.end, Identifier)
		pos = s.end
	}
	emit(pos, uint32(len(src)), Other)
	return tokens
}

// Render concatenates token texts back into source bytes. For a stream
// produced by Tokenize and not reordered since, Render is the exact
// inverse of the partition.
func Render(tokens []Token) []byte {
	var buf bytes.Buffer
	for _, tok := range tokens {
		buf.WriteString(tok.Text)
	}
	return buf.Bytes()
}
