package model

type Schema struct {
	Name        string
	Description string
	Type        SchemaType
	Format      string
	Nullable    bool
	Deprecated  bool
	Default     any

	// Object properties
	Properties []Property
	Required   []string

	// Array items
	Items *Schema

	// Enum values
	Enum []any

	// Reference
	Ref string

	// Additional properties for maps
	AdditionalProperties *Schema

	// Extensions holds every x-* extension of the schema decoded into plain
	// Go values (string, bool, float64, int, []any, map[string]any or nil).
	Extensions map[string]any
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

// IsDate reports whether the schema is a string with the date format.
func (s *Schema) IsDate() bool {
	return s != nil && s.Type == TypeString && s.Format == "date"
}

// IsDateTime reports whether the schema is a string with the date-time format.
func (s *Schema) IsDateTime() bool {
	return s != nil && s.Type == TypeString && s.Format == "date-time"
}

// IsPrimitive reports whether the schema is a scalar type.
func (s *Schema) IsPrimitive() bool {
	if s == nil || s.Ref != "" {
		return false
	}
	switch s.Type {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean:
		return true
	default:
		return false
	}
}

// IsRequired reports whether the named property is listed as required.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

type Property struct {
	Name   string
	Schema *Schema
}

type SecurityScheme struct {
	Name        string
	Type        SecuritySchemeType
	Description string
	In          string
	KeyName     string
	Scheme      string
}

type SecuritySchemeType string

const (
	SecurityTypeAPIKey        SecuritySchemeType = "apiKey"
	SecurityTypeHTTP          SecuritySchemeType = "http"
	SecurityTypeOAuth2        SecuritySchemeType = "oauth2"
	SecurityTypeOpenIDConnect SecuritySchemeType = "openIdConnect"
	SecurityTypeMutualTLS     SecuritySchemeType = "mutualTLS"
)
