package respell

import (
	"context"
	"fmt"

	"github.com/jward/respell/internal/lexis"
	"github.com/jward/respell/internal/report"
	"github.com/jward/respell/internal/rewrite"
)

// Fixer runs the full correction pipeline (tokenize, rewrite, render,
// diff) over individual source buffers. It holds no mutable state beyond
// configuration, so one Fixer may serve any number of goroutines.
type Fixer struct {
	table        *Table
	languages    map[string]bool // nil means all languages
	contextLines int
}

// Option configures a Fixer.
type Option func(*Fixer)

// WithLanguages restricts which languages the Fixer will process. Sources
// in other languages are skipped (nil result, no error).
func WithLanguages(languages ...string) Option {
	return func(f *Fixer) {
		f.languages = make(map[string]bool, len(languages))
		for _, lang := range languages {
			f.languages[lang] = true
		}
	}
}

// WithContextLines sets the number of context lines in generated unified
// diffs. Default is 3.
func WithContextLines(n int) Option {
	return func(f *Fixer) {
		f.contextLines = n
	}
}

// New creates a Fixer over an immutable lookup table.
func New(tbl *Table, opts ...Option) *Fixer {
	f := &Fixer{
		table:        tbl,
		contextLines: 3,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FileResult is the outcome of fixing one source buffer.
type FileResult struct {
	Path     string
	Language string
	Output   []byte   // rewritten source; equals the input when Changes is empty
	Changes  []Change // in position order
	Diff     string   // unified diff, "" when nothing changed
}

// Summary formats the result's changes as one "path:line:col: old -> new"
// line each.
func (r *FileResult) Summary() string {
	return report.Summary(r.Path, r.Changes)
}

// FixSource corrects one source buffer. The language is detected from the
// path's extension; unsupported or filtered-out languages return
// (nil, nil) so callers can feed mixed trees without pre-filtering.
// The fixer never touches the filesystem: src is the file's content as
// read by the caller, and the corrected bytes come back in the result.
func (f *Fixer) FixSource(ctx context.Context, path string, src []byte) (*FileResult, error) {
	lang, ok := lexis.LanguageForFile(path)
	if !ok {
		return nil, nil // unsupported extension
	}
	if f.languages != nil && !f.languages[lang] {
		return nil, nil // filtered out
	}

	tokens, err := lexis.Tokenize(ctx, src, lang)
	if err != nil {
		return nil, fmt.Errorf("fix %s: %w", path, err)
	}

	res := rewrite.Rewrite(tokens, f.table)
	out := lexis.Render(res.Tokens)

	var diff string
	if len(res.Changes) > 0 {
		diff, err = report.Unified(path, src, out, f.contextLines)
		if err != nil {
			return nil, fmt.Errorf("fix %s: %w", path, err)
		}
	}

	return &FileResult{
		Path:     path,
		Language: lang,
		Output:   out,
		Changes:  res.Changes,
		Diff:     diff,
	}, nil
}
