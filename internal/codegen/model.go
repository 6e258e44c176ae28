// Package codegen defines the intermediate model handed to templates: models,
// properties and security schemes after type resolution, plus the typed
// markers the enrichment pass attaches to them.
package codegen

import "github.com/touchin/ticodegen/internal/model"

// CustomDateFormatExtension is the document extension carrying a custom date
// pattern for a property.
const CustomDateFormatExtension = "x-custom-date-format"

// Legacy vendor extension names, kept so templates written against them work.
const (
	ExtDateFormatName    = "x-codegen-date-format-name"
	ExtIsISO8601Date     = "x-codegen-is-iso8601-date"
	ExtHasDate           = "x-has-date"
	ExtIsDateFormat      = "x-is-date-format"
	ExtIsAlias           = "x-is-alias"
	ExtSecurityName      = "x-security-camel-case-name"
	ExtSecurityNameParam = "x-security-name-param"
)

type Property struct {
	Name             string
	VarName          string
	BaseType         string
	DataType         string
	DataTypeWithEnum string
	DefaultValue     string
	Description      string
	Required         bool
	EnumName         string
	EnumValues       []string

	IsDate     bool
	IsDateTime bool
	IsList     bool
	IsObject   bool
	IsEnum     bool

	// Nullable is set when the schema admits null even if required.
	Nullable   bool
	Deprecated bool

	// Items is the element property of a list.
	Items *Property

	// Extensions are the x-* extensions of the property schema.
	Extensions map[string]any

	Markers PropertyMarkers
}

// CustomDateFormat returns the raw custom date format extension value and
// whether the key is present at all.
func (p *Property) CustomDateFormat() (any, bool) {
	if p == nil || p.Extensions == nil {
		return nil, false
	}
	v, ok := p.Extensions[CustomDateFormatExtension]
	return v, ok
}

// Optional reports whether the generated type is nullable.
func (p *Property) Optional() bool {
	return !p.Required || p.Nullable
}

// IsDateValued reports whether the property holds a date of any kind.
func (p *Property) IsDateValued() bool {
	_, custom := p.CustomDateFormat()
	return p.IsDate || p.IsDateTime || custom
}

// PropertyMarkers are the traits detected on a property.
type PropertyMarkers struct {
	Alias       bool
	ISO8601Date bool
	// DateFormat is set for any date the generated code formats itself.
	DateFormat     bool
	DateFormatName string
}

// VendorExtensions renders the markers under their legacy extension names.
func (m PropertyMarkers) VendorExtensions() map[string]any {
	ext := make(map[string]any)
	if m.Alias {
		ext[ExtIsAlias] = true
	}
	if m.ISO8601Date {
		ext[ExtIsISO8601Date] = true
	}
	if m.DateFormat {
		ext[ExtIsDateFormat] = true
	}
	if m.DateFormatName != "" {
		ext[ExtDateFormatName] = m.DateFormatName
	}
	return ext
}

type Model struct {
	Name          string
	QualifiedName string
	Package       string
	Description   string
	Properties    []*Property
	Imports       []string

	// AliasOf is the target type of a typealias model.
	AliasOf string
	// EnumValues is set for top-level enum classes.
	EnumValues []string

	Schema *model.Schema

	Markers ModelMarkers
}

type ModelMarkers struct {
	HasDate bool
}

func (m ModelMarkers) VendorExtensions() map[string]any {
	ext := make(map[string]any)
	if m.HasDate {
		ext[ExtHasDate] = true
	}
	return ext
}

type Security struct {
	Name    string
	Type    model.SecuritySchemeType
	In      string
	KeyName string
	Scheme  string

	Markers SecurityMarkers
}

type SecurityMarkers struct {
	CamelCaseName string
	ParamName     string
}

func (m SecurityMarkers) VendorExtensions() map[string]any {
	return map[string]any{
		ExtSecurityName:      m.CamelCaseName,
		ExtSecurityNameParam: m.ParamName,
	}
}
