// Package respell corrects known misspellings of identifiers in source
// code. It is built on tree-sitter: source text is partitioned into
// identifier tokens and the text between them, each identifier is checked
// against an immutable lookup table of known typos, and matches are
// substituted in place. Keywords, string literals, and comments are never
// touched, because their contents are not identifier nodes in the grammar.
//
// # Pipeline
//
// A correction runs in three stages:
//
//  1. Tokenize: parse the source with the language's tree-sitter grammar
//     and flatten it into an ordered token stream that concatenates back
//     to the exact input.
//
//  2. Rewrite: a single stateless pass over the stream. Identifier tokens
//     matching a known typo get the canonical spelling; everything else
//     passes through byte for byte. No token is reordered, inserted, or
//     deleted.
//
//  3. Report: the rewritten stream renders back to source, and the pass
//     yields a position-ordered change list plus a unified diff.
//
// # Usage
//
// Build a table, create a Fixer, and feed it source buffers:
//
//	tbl, err := respell.LoadTable("typos.yaml")
//	if err != nil { ... }
//
//	f := respell.New(tbl)
//	res, err := f.FixSource(ctx, "main.go", src)
//	if res != nil && len(res.Changes) > 0 {
//		fmt.Print(res.Diff)
//	}
//
// The table file is a YAML mapping from canonical name to its known
// misspellings:
//
//	previous: [previuos, previuous]
//	beginning: [begining, beginign]
//
// # Invariants
//
// A Table is validated at build time: every entry needs at least one
// typo, no typo may equal a canonical name, and no typo may belong to two
// entries. Together these make the rewrite idempotent (running a fixed
// file through the same table again yields zero changes) and total (a
// rewrite over a valid table cannot fail).
//
// The table is immutable after LoadTable/Build and safe to share across
// concurrent [Fixer.FixSource] calls; [Fixer.FixBatch] does exactly that
// over a bounded worker pool.
//
// The package performs no file I/O: callers read sources and write
// results. There is no persisted state beyond the caller's table file.
package respell
