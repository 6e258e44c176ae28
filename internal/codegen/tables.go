package codegen

import "slices"

// TypeTables are the run-scoped lookup tables consulted during type
// resolution. A fresh instance is needed for every generation run.
type TypeTables struct {
	// TypeMapping maps abstract schema types to concrete Kotlin types.
	TypeMapping map[string]string
	// ImportMapping maps a concrete type to its fully qualified import.
	ImportMapping map[string]string
	// DefaultIncludes are the imports the shared date adapter file needs.
	DefaultIncludes ImportSet

	// DateLibrary records the date strategy applied to the tables.
	DateLibrary string
	JodaTime    bool
	Java8       bool
}

func NewTypeTables() *TypeTables {
	return &TypeTables{
		TypeMapping:   make(map[string]string),
		ImportMapping: make(map[string]string),
	}
}

// MapType returns the concrete type for an abstract type, or the abstract
// type itself when no mapping exists.
func (t *TypeTables) MapType(abstract string) string {
	if mapped, ok := t.TypeMapping[abstract]; ok {
		return mapped
	}
	return abstract
}

// ImportFor returns the import needed to reference a concrete type.
func (t *TypeTables) ImportFor(typeName string) (string, bool) {
	imp, ok := t.ImportMapping[typeName]
	return imp, ok
}

// ImportSet is an insertion-ordered set of import paths.
type ImportSet struct {
	items []string
}

// Add inserts path unless already present and reports whether it was added.
func (s *ImportSet) Add(path string) bool {
	if path == "" || slices.Contains(s.items, path) {
		return false
	}
	s.items = append(s.items, path)
	return true
}

func (s *ImportSet) Contains(path string) bool {
	return slices.Contains(s.items, path)
}

func (s *ImportSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the set in insertion order.
func (s *ImportSet) Items() []string {
	return slices.Clone(s.items)
}
