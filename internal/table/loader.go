package table

import (
	"fmt"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// The configuration file is a YAML mapping from canonical name to the
// list of misspellings that should be corrected to it:
//
//	previous: [previuos, previuous]
//	beginning: [begining, beginign]
//	statement: [statment]

// Load reads a YAML table file from disk and builds a Table from it.
func Load(path string) (*Table, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load table %s: %w", path, err)
	}
	return fromKoanf(k)
}

// Parse builds a Table from raw YAML bytes.
func Parse(raw []byte) (*Table, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	return fromKoanf(k)
}

// fromKoanf unmarshals the loaded mapping and hands it to Build. Entries
// are sorted by canonical name so the result does not depend on YAML map
// iteration order.
func fromKoanf(k *koanf.Koanf) (*Table, error) {
	var m map[string][]string
	if err := k.Unmarshal("", &m); err != nil {
		return nil, fmt.Errorf("unmarshal table: %w", err)
	}

	entries := make([]CanonicalEntry, 0, len(m))
	for canonical, typos := range m {
		entries = append(entries, CanonicalEntry{Canonical: canonical, Typos: typos})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Canonical < entries[j].Canonical })

	return Build(entries)
}
