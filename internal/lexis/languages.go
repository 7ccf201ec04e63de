package lexis

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	ts "github.com/smacker/go-tree-sitter/typescript/typescript"
)

// extToLanguage maps file extensions to canonical language names.
var extToLanguage = map[string]string{
	".go":   "go",
	".ts":   "typescript",
	".tsx":  "typescript",
	".js":   "javascript",
	".jsx":  "javascript",
	".py":   "python",
	".rs":   "rust",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".hpp":  "cpp",
	".java": "java",
	".php":  "php",
	".rb":   "ruby",
}

// identifierNodeTypes lists, per language, the leaf node types of the
// concrete syntax tree that carry an identifier-like name. Everything
// outside these leaves (keywords, operators, string and comment
// interiors) is emitted as an Other token and never rewritten.
var identifierNodeTypes = map[string]map[string]bool{
	"go": {
		"identifier":         true,
		"type_identifier":    true,
		"field_identifier":   true,
		"package_identifier": true,
	},
	"typescript": {
		"identifier":                    true,
		"type_identifier":               true,
		"property_identifier":           true,
		"shorthand_property_identifier": true,
	},
	"javascript": {
		"identifier":                    true,
		"property_identifier":           true,
		"shorthand_property_identifier": true,
	},
	"python": {
		"identifier": true,
	},
	"rust": {
		"identifier":       true,
		"type_identifier":  true,
		"field_identifier": true,
	},
	"c": {
		"identifier":       true,
		"type_identifier":  true,
		"field_identifier": true,
	},
	"cpp": {
		"identifier":           true,
		"type_identifier":      true,
		"field_identifier":     true,
		"namespace_identifier": true,
	},
	"java": {
		"identifier":      true,
		"type_identifier": true,
	},
	"php": {
		"name": true,
	},
	"ruby": {
		"identifier": true,
		"constant":   true,
	},
}

// langToGrammar maps language names to tree-sitter Language objects.
// Lazily initialized on first call via sync.Once.
var (
	langToGrammar map[string]*sitter.Language
	grammarsOnce  sync.Once
)

func initGrammars() {
	grammarsOnce.Do(func() {
		langToGrammar = map[string]*sitter.Language{
			"go":         golang.GetLanguage(),
			"typescript": ts.GetLanguage(),
			"javascript": javascript.GetLanguage(),
			"python":     python.GetLanguage(),
			"rust":       rust.GetLanguage(),
			"c":          c.GetLanguage(),
			"cpp":        cpp.GetLanguage(),
			"java":       java.GetLanguage(),
			"php":        php.GetLanguage(),
			"ruby":       ruby.GetLanguage(),
		}
	})
}

// LanguageForFile returns the canonical language name for a file path based
// on its extension. Returns ("", false) if the extension is not recognized.
func LanguageForFile(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := extToLanguage[ext]
	return lang, ok
}

// grammarFor returns the tree-sitter Language for a canonical language
// name. Returns (nil, false) if the language is not supported.
func grammarFor(lang string) (*sitter.Language, bool) {
	initGrammars()
	l, ok := langToGrammar[lang]
	return l, ok
}
