// Package report renders rewrite output for human consumption: unified
// diffs of the before/after source and one-line change summaries.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jward/respell/internal/rewrite"
)

// Unified returns a unified diff between before and after, labeled
// a/path and b/path, with the given number of context lines. Returns ""
// when the inputs are identical.
func Unified(path string, before, after []byte, context int) (string, error) {
	if bytes.Equal(before, after) {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  context,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("unified diff %s: %w", path, err)
	}
	return text, nil
}

// Summary formats changes as one "path:line:col: old -> new" line each.
// Returns "" for an empty change list.
func Summary(path string, changes []rewrite.Change) string {
	var sb strings.Builder
	for _, c := range changes {
		fmt.Fprintf(&sb, "%s:%d:%d: %s -> %s\n", path, c.Line, c.Col, c.Old, c.New)
	}
	return sb.String()
}
