package models

import (
	"github.com/touchin/ticodegen/internal/codegen"
)

const stringType = "kotlin.String"

// dateCodec writes the Kotlin expressions that move a date property between
// its model type and the string carried on the wire.
type dateCodec struct {
	joda bool
	// aliases maps typealias names to their target types.
	aliases map[string]string
	// imports maps a concrete type to its fully qualified import.
	imports map[string]string
}

func (c dateCodec) concrete(typ string) string {
	if target, ok := c.aliases[typ]; ok {
		return target
	}
	return typ
}

// converts reports whether p, or the elements of p, need converting.
func (c dateCodec) converts(p *codegen.Property) bool {
	if p == nil {
		return false
	}
	if p.IsList {
		return c.converts(p.Items)
	}
	if c.concrete(p.DataType) == stringType {
		return false
	}
	return p.Markers.ISO8601Date || p.Markers.DateFormatName != ""
}

func (c dateCodec) wireType(p *codegen.Property) string {
	if !c.converts(p) {
		return nullable(p, p.DataTypeWithEnum)
	}
	return nullable(p, c.wireElement(p))
}

func (c dateCodec) wireElement(p *codegen.Property) string {
	if p.IsList {
		return p.BaseType + "<" + c.wireElement(p.Items) + ">"
	}
	return stringType
}

func (c dateCodec) fromWire(p *codegen.Property, expr string) string {
	return c.convert(p, expr, c.parse)
}

func (c dateCodec) toWire(p *codegen.Property, expr string) string {
	return c.convert(p, expr, c.format)
}

func (c dateCodec) convert(p *codegen.Property, expr string, scalar func(*codegen.Property, string) string) string {
	if !c.converts(p) {
		return expr
	}
	if p.IsList {
		return expr + access(p) + "map { " + c.convert(p.Items, "it", scalar) + " }"
	}
	if p.Optional() {
		return expr + "?.let { " + scalar(p, "it") + " }"
	}
	return scalar(p, expr)
}

func (c dateCodec) parse(p *codegen.Property, v string) string {
	name := p.Markers.DateFormatName
	if name == "" {
		return c.concrete(p.DataType) + ".parse(" + v + ")"
	}
	formatter := "APIDateFormat." + name + ".formatter"
	if c.joda {
		return formatter + ".parseDateTime(" + v + ")"
	}
	return c.concrete(p.DataType) + ".parse(" + v + ", " + formatter + ")"
}

func (c dateCodec) format(p *codegen.Property, v string) string {
	name := p.Markers.DateFormatName
	if name == "" {
		return v + ".toString()"
	}
	formatter := "APIDateFormat." + name + ".formatter"
	if c.joda {
		return formatter + ".print(" + v + ")"
	}
	return formatter + ".format(" + v + ")"
}

// conversionImport returns the import of the concrete type the conversions
// of p name, if any.
func (c dateCodec) conversionImport(p *codegen.Property) (string, bool) {
	if !c.converts(p) {
		return "", false
	}
	if p.IsList {
		return c.conversionImport(p.Items)
	}
	imp, ok := c.imports[c.concrete(p.DataType)]
	return imp, ok
}

// usesFormats reports whether any conversion of p goes through APIDateFormat.
func (c dateCodec) usesFormats(p *codegen.Property) bool {
	if p == nil {
		return false
	}
	if p.IsList {
		return c.usesFormats(p.Items)
	}
	return c.converts(p) && p.Markers.DateFormatName != ""
}

func nullable(p *codegen.Property, typ string) string {
	if p.Optional() {
		return typ + "?"
	}
	return typ
}

func access(p *codegen.Property) string {
	if p.Optional() {
		return "?."
	}
	return "."
}
