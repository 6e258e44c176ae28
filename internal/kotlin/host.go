// Package kotlin builds the intermediate codegen model for a Kotlin client
// from a parsed OpenAPI document.
package kotlin

import (
	"maps"
	"slices"

	"github.com/touchin/ticodegen/internal/codegen"
	"github.com/touchin/ticodegen/internal/model"
	"github.com/touchin/ticodegen/internal/naming"
)

// Host resolves schemas against the run's type tables. It satisfies
// enrich.Host.
type Host struct {
	spec         *model.Spec
	tables       *codegen.TypeTables
	modelPackage string
	exclude      map[string]bool

	// aliases maps a declared class name to the primitive schema it stands for.
	aliases map[string]*model.Schema
}

// NewHost prepares a host for one run. The date strategy must already be
// applied to tables.
func NewHost(spec *model.Spec, tables *codegen.TypeTables, modelPackage string, excludeSchemas []string) *Host {
	h := &Host{
		spec:         spec,
		tables:       tables,
		modelPackage: modelPackage,
		exclude:      make(map[string]bool),
		aliases:      make(map[string]*model.Schema),
	}
	for _, name := range excludeSchemas {
		h.exclude[name] = true
	}
	for i := range spec.Schemas {
		s := &spec.Schemas[i]
		if s.IsPrimitive() && len(s.Enum) == 0 {
			h.aliases[ClassName(s.Name)] = s
		}
	}
	return h
}

func (h *Host) IsReservedWord(name string) bool {
	return IsReservedWord(name)
}

// AliasSchema returns the schema behind a declared type alias name.
func (h *Host) AliasSchema(name string) (*model.Schema, bool) {
	s, ok := h.aliases[name]
	return s, ok
}

// AliasNames lists the known type alias names in sorted order.
func (h *Host) AliasNames() []string {
	return slices.Sorted(maps.Keys(h.aliases))
}

// ModelName derives the Kotlin class name for a component schema.
func ModelName(schemaName string) string {
	name := naming.SanitizeIdentifier(naming.Camelize(schemaName, false))
	if name == "" {
		return "Model"
	}
	return name
}

// ClassName is the declared name of a generated model class. Keyword
// collisions are escaped the same way property types are.
func ClassName(schemaName string) string {
	name := ModelName(schemaName)
	if IsReservedWord(name) {
		return naming.EscapeReservedType(name)
	}
	return name
}

// Models builds one codegen model per component schema, in document order.
func (h *Host) Models() []*codegen.Model {
	var models []*codegen.Model
	for i := range h.spec.Schemas {
		s := &h.spec.Schemas[i]
		if h.exclude[s.Name] {
			continue
		}
		models = append(models, h.buildModel(s))
	}
	return models
}

func (h *Host) buildModel(s *model.Schema) *codegen.Model {
	name := ClassName(s.Name)
	m := &codegen.Model{
		Name:          name,
		QualifiedName: h.qualify(name),
		Package:       h.modelPackage,
		Description:   s.Description,
		Schema:        s,
	}

	var imports codegen.ImportSet

	switch {
	case len(s.Enum) > 0 && s.Ref == "":
		m.EnumValues = enumValues(s.Enum)
	case s.Type == model.TypeObject && s.AdditionalProperties == nil && len(s.Properties) > 0:
		for _, p := range s.Properties {
			prop := h.Property(p.Name, p.Schema, s.IsRequired(p.Name))
			m.Properties = append(m.Properties, prop)
			h.collectImports(prop, &imports)
		}
	default:
		target := h.Property(s.Name, s, true)
		m.AliasOf = target.DataType
		h.collectImports(target, &imports)
	}

	m.Imports = imports.Items()
	return m
}

func (h *Host) qualify(name string) string {
	if h.modelPackage == "" {
		return name
	}
	return h.modelPackage + "." + name
}

func (h *Host) collectImports(p *codegen.Property, imports *codegen.ImportSet) {
	for p != nil {
		if imp, ok := h.tables.ImportFor(p.DataType); ok {
			imports.Add(imp)
		}
		p = p.Items
	}
}

// Securities builds the security scheme entries in document order.
func (h *Host) Securities() []*codegen.Security {
	securities := make([]*codegen.Security, 0, len(h.spec.Security))
	for _, s := range h.spec.Security {
		securities = append(securities, &codegen.Security{
			Name:    s.Name,
			Type:    s.Type,
			In:      s.In,
			KeyName: s.KeyName,
			Scheme:  s.Scheme,
		})
	}
	return securities
}
