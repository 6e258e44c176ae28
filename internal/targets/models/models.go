// Package models renders one Kotlin source file per model.
package models

import (
	"fmt"
	"slices"

	"github.com/touchin/ticodegen/internal/codegen"
	"github.com/touchin/ticodegen/internal/targets"
	"github.com/touchin/ticodegen/internal/templates"
)

const templateName = "kotlin/model.kt.tmpl"

const (
	importJSON          = "com.squareup.moshi.Json"
	importFromJSON      = "com.squareup.moshi.FromJson"
	importToJSON        = "com.squareup.moshi.ToJson"
	importDataException = "com.squareup.moshi.JsonDataException"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "models"
}

type field struct {
	Property *codegen.Property
	Type     string
	Default  string
	WireType string
	FromWire string
	ToWire   string

	VendorExtensions map[string]any
}

type enumClass struct {
	Name   string
	Values []string
}

type templateData struct {
	Package     string
	Imports     []string
	Model       *codegen.Model
	Fields      []field
	Enums       []enumClass
	DateAdapter bool

	VendorExtensions map[string]any
}

func (t *Target) Generate(engine templates.Engine, ctx *targets.Context) ([]targets.File, error) {
	codec := dateCodec{
		joda:    ctx.Tables.JodaTime,
		aliases: make(map[string]string),
		imports: ctx.Tables.ImportMapping,
	}
	for _, m := range ctx.Models {
		if m.AliasOf != "" {
			codec.aliases[m.Name] = m.AliasOf
		}
	}

	files := make([]targets.File, 0, len(ctx.Models))
	for _, m := range ctx.Models {
		data := buildData(m, codec, ctx.PackageName)
		content, err := engine.Execute(templateName, data)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", m.Name, err)
		}
		files = append(files, targets.File{
			Path:    targets.SourcePath(m.Package, m.Name+".kt"),
			Content: content,
		})
	}
	return files, nil
}

func buildData(m *codegen.Model, codec dateCodec, rootPackage string) templateData {
	data := templateData{
		Package: m.Package,
		Model:   m,
		// Date-bearing models declare the adapter registered for them.
		DateAdapter: m.Markers.HasDate && m.AliasOf == "" && len(m.EnumValues) == 0,
	}
	var documentExt map[string]any
	if m.Schema != nil {
		documentExt = m.Schema.Extensions
	}
	data.VendorExtensions = targets.VendorExtensions(documentExt, m.Markers.VendorExtensions())

	var imports codegen.ImportSet
	for _, imp := range m.Imports {
		imports.Add(imp)
	}

	if len(m.EnumValues) > 0 {
		addEnumImports(&imports)
	}

	seen := make(map[string]bool)
	for _, p := range m.Properties {
		imports.Add(importJSON)

		f := field{
			Property: p,
			Type:     nullable(p, p.DataTypeWithEnum),
			Default:  defaultClause(p),
			WireType: codec.wireType(p),
			FromWire: codec.fromWire(p, "wire."+p.VarName),
			ToWire:   codec.toWire(p, "value."+p.VarName),

			VendorExtensions: targets.VendorExtensions(p.Extensions, p.Markers.VendorExtensions()),
		}
		data.Fields = append(data.Fields, f)

		if p.IsEnum && p.EnumName != "" && !seen[p.EnumName] {
			seen[p.EnumName] = true
			data.Enums = append(data.Enums, enumClass{Name: p.EnumName, Values: p.EnumValues})
			addEnumImports(&imports)
		}

		if data.DateAdapter {
			if codec.usesFormats(p) && rootPackage != "" {
				imports.Add(rootPackage + ".APIDateFormat")
			}
			if imp, ok := codec.conversionImport(p); ok {
				imports.Add(imp)
			}
		}
	}

	if data.DateAdapter {
		imports.Add(importFromJSON)
		imports.Add(importToJSON)
	}

	data.Imports = imports.Items()
	slices.Sort(data.Imports)
	return data
}

func addEnumImports(imports *codegen.ImportSet) {
	imports.Add(importFromJSON)
	imports.Add(importToJSON)
	imports.Add(importDataException)
}

func defaultClause(p *codegen.Property) string {
	if p.DefaultValue != "" {
		return " = " + p.DefaultValue
	}
	if !p.Required {
		return " = null"
	}
	return ""
}
