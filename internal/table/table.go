// Package table holds the canonical-name lookup table: the mapping from
// known misspellings to the spelling they should be corrected to. A Table
// is built once, validated at build time, and immutable afterwards, so it
// may be shared across any number of concurrent rewrite passes.
package table

import "fmt"

// CanonicalEntry pairs a correct identifier spelling with the misspelled
// variants that should be corrected to it.
type CanonicalEntry struct {
	Canonical string   `koanf:"canonical"`
	Typos     []string `koanf:"typos"`
}

// ConfigError reports an invalid entry detected by Build. It is the only
// failure class of table construction; the caller must fix the
// configuration and rebuild.
type ConfigError struct {
	Canonical string // entry being validated
	Typo      string // offending typo, empty when the entry as a whole is bad
	Reason    string
}

func (e *ConfigError) Error() string {
	if e.Typo != "" {
		return fmt.Sprintf("table config: entry %q: typo %q: %s", e.Canonical, e.Typo, e.Reason)
	}
	return fmt.Sprintf("table config: entry %q: %s", e.Canonical, e.Reason)
}

// Table maps misspelled identifier names to their canonical spelling.
// Zero value is not usable; construct with Build.
type Table struct {
	entries []CanonicalEntry
	byTypo  map[string]string // typo → canonical
}

// Build validates entries and constructs a Table. It fails with a
// *ConfigError when an entry has no typos, a typo is empty, a typo equals
// a canonical name (its own or another entry's; either would break
// rewrite idempotence), or two entries claim the same typo (ambiguous
// correction).
func Build(entries []CanonicalEntry) (*Table, error) {
	canonicals := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Canonical == "" {
			return nil, &ConfigError{Reason: "empty canonical name"}
		}
		if canonicals[e.Canonical] {
			return nil, &ConfigError{Canonical: e.Canonical, Reason: "duplicate entry"}
		}
		canonicals[e.Canonical] = true
	}

	byTypo := make(map[string]string)
	for _, e := range entries {
		if len(e.Typos) == 0 {
			return nil, &ConfigError{Canonical: e.Canonical, Reason: "empty typo set"}
		}
		for _, typo := range e.Typos {
			if typo == "" {
				return nil, &ConfigError{Canonical: e.Canonical, Reason: "empty typo string"}
			}
			if canonicals[typo] {
				return nil, &ConfigError{Canonical: e.Canonical, Typo: typo, Reason: "typo is also a canonical name"}
			}
			if owner, taken := byTypo[typo]; taken {
				return nil, &ConfigError{
					Canonical: e.Canonical,
					Typo:      typo,
					Reason:    fmt.Sprintf("already corrects to %q (ambiguous)", owner),
				}
			}
			byTypo[typo] = e.Canonical
		}
	}

	cp := make([]CanonicalEntry, len(entries))
	copy(cp, entries)
	return &Table{entries: cp, byTypo: byTypo}, nil
}

// Lookup returns the canonical spelling for a known misspelling. The
// second return is false when name is not a known typo, including when
// name is itself a canonical spelling.
func (t *Table) Lookup(name string) (string, bool) {
	canonical, ok := t.byTypo[name]
	return canonical, ok
}

// Entries returns a copy of the entries the table was built from.
func (t *Table) Entries() []CanonicalEntry {
	cp := make([]CanonicalEntry, len(t.entries))
	copy(cp, t.entries)
	return cp
}

// Len reports the number of known misspellings across all entries.
func (t *Table) Len() int {
	return len(t.byTypo)
}
