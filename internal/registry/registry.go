// Package registry accumulates the run-wide tables that supporting files
// render in aggregate: custom date formats and generated JSON adapters.
package registry

import (
	"maps"
	"slices"
	"sort"
)

// Registries is the per-run context threaded through the enrichment pass.
// Never reuse one across generation runs.
type Registries struct {
	DateFormats *DateFormats
	Adapters    *Adapters
}

// New creates empty registries for one generation run.
func New() *Registries {
	return &Registries{
		DateFormats: NewDateFormats(),
		Adapters:    NewAdapters(),
	}
}

// DateFormat is one custom date format entry.
type DateFormat struct {
	Name    string
	Pattern string
}

// DateFormats maps a sanitized format name to its literal pattern.
type DateFormats struct {
	formats map[string]string
}

func NewDateFormats() *DateFormats {
	return &DateFormats{formats: make(map[string]string)}
}

// Add records a custom format and reports whether the name was new.
// Adding an existing name leaves the registry unchanged.
func (r *DateFormats) Add(name, pattern string) bool {
	if _, ok := r.formats[name]; ok {
		return false
	}
	r.formats[name] = pattern
	return true
}

// Pattern returns the pattern registered under name.
func (r *DateFormats) Pattern(name string) (string, bool) {
	p, ok := r.formats[name]
	return p, ok
}

func (r *DateFormats) Len() int {
	return len(r.formats)
}

// Entries returns all formats sorted by name.
func (r *DateFormats) Entries() []DateFormat {
	entries := make([]DateFormat, 0, len(r.formats))
	for _, name := range slices.Sorted(maps.Keys(r.formats)) {
		entries = append(entries, DateFormat{Name: name, Pattern: r.formats[name]})
	}
	return entries
}

// Adapters collects fully qualified adapter identifiers together with the
// imports needed to reference them.
type Adapters struct {
	names   map[string]struct{}
	imports map[string]struct{}
}

func NewAdapters() *Adapters {
	return &Adapters{
		names:   make(map[string]struct{}),
		imports: make(map[string]struct{}),
	}
}

// Add records an adapter and its import in the same step.
func (r *Adapters) Add(name, importPath string) {
	r.names[name] = struct{}{}
	r.imports[importPath] = struct{}{}
}

func (r *Adapters) Has(name string) bool {
	_, ok := r.names[name]
	return ok
}

func (r *Adapters) Len() int {
	return len(r.names)
}

// Names returns adapter identifiers in sorted order.
func (r *Adapters) Names() []string {
	return sortedKeys(r.names)
}

// Imports returns adapter imports in sorted order.
func (r *Adapters) Imports() []string {
	return sortedKeys(r.imports)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
