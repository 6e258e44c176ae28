package model

import "strings"

type Spec struct {
	Info     Info
	Schemas  []Schema
	Security []SecurityScheme
}

// SchemaByRef returns a schema by its $ref path (e.g., "#/components/schemas/User").
// Returns nil if the schema is not found.
func (s *Spec) SchemaByRef(ref string) *Schema {
	parts := strings.Split(ref, "/")
	if len(parts) == 0 {
		return nil
	}
	return s.SchemaByName(parts[len(parts)-1])
}

// SchemaByName returns the component schema with the given name, or nil.
func (s *Spec) SchemaByName(name string) *Schema {
	for i := range s.Schemas {
		if s.Schemas[i].Name == name {
			return &s.Schemas[i]
		}
	}
	return nil
}

type Info struct {
	Title       string
	Description string
	Version     string
}
