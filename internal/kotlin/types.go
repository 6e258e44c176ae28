package kotlin

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/touchin/ticodegen/internal/codegen"
	"github.com/touchin/ticodegen/internal/model"
	"github.com/touchin/ticodegen/internal/naming"
)

// AbstractType returns the abstract type key of a primitive schema, the key
// looked up in the type mapping.
func AbstractType(s *model.Schema) string {
	if s == nil {
		return "object"
	}
	switch s.Type {
	case model.TypeString:
		switch s.Format {
		case "date", "date-time", "time", "binary":
			return s.Format
		case "byte":
			return "ByteArray"
		default:
			return "string"
		}
	case model.TypeInteger:
		if s.Format == "int64" {
			return "long"
		}
		return "integer"
	case model.TypeNumber:
		switch s.Format {
		case "float", "double":
			return s.Format
		default:
			return "number"
		}
	case model.TypeBoolean:
		return "boolean"
	case model.TypeArray:
		return "array"
	default:
		return "object"
	}
}

// Property resolves a schema into a codegen property.
func (h *Host) Property(name string, s *model.Schema, required bool) *codegen.Property {
	p := &codegen.Property{
		Name:     name,
		VarName:  EscapeVarName(naming.ParamName(name)),
		Required: required,
	}
	if s == nil {
		p.BaseType = anyType
		p.DataType = anyType
		p.DataTypeWithEnum = anyType
		p.IsObject = true
		return p
	}

	p.Description = s.Description
	p.Nullable = s.Nullable
	p.Deprecated = s.Deprecated
	if len(s.Extensions) > 0 {
		p.Extensions = maps.Clone(s.Extensions)
	}

	switch {
	case s.Ref != "":
		h.resolveRef(p, s)
	case s.Type == model.TypeArray:
		h.resolveList(p, s)
	case s.Type == model.TypeObject || s.Type == "":
		h.resolveObject(p, s)
	default:
		h.resolvePrimitive(p, s)
	}

	if p.DataTypeWithEnum == "" {
		p.DataTypeWithEnum = p.DataType
	}
	p.DefaultValue = defaultValue(p, s)
	return p
}

func (h *Host) resolveRef(p *codegen.Property, s *model.Schema) {
	parts := strings.Split(s.Ref, "/")
	name := ModelName(parts[len(parts)-1])
	// Alias references use the declared, already escaped name.
	if target := h.spec.SchemaByRef(s.Ref); target != nil && h.aliases[ClassName(target.Name)] == target {
		name = ClassName(target.Name)
	} else {
		p.IsObject = true
	}
	p.BaseType = name
	p.DataType = name
}

func (h *Host) resolveList(p *codegen.Property, s *model.Schema) {
	item := h.Property(p.Name, s.Items, true)
	list := h.tables.MapType("array")

	p.IsList = true
	p.Items = item
	p.BaseType = list
	p.DataType = list + "<" + item.DataType + ">"

	if item.IsEnum {
		p.IsEnum = true
		p.EnumName = naming.EnumName(p.Name)
		p.EnumValues = item.EnumValues
		item.EnumName = p.EnumName
		item.DataTypeWithEnum = p.EnumName
	}
	p.DataTypeWithEnum = list + "<" + item.DataTypeWithEnum + ">"
}

func (h *Host) resolveObject(p *codegen.Property, s *model.Schema) {
	if s.AdditionalProperties != nil {
		value := h.Property(p.Name, s.AdditionalProperties, true)
		m := h.tables.MapType("map")
		p.BaseType = m
		p.DataType = m + "<" + h.tables.MapType("string") + ", " + value.DataType + ">"
		return
	}
	p.BaseType = h.tables.MapType("object")
	p.DataType = p.BaseType
	p.IsObject = true
}

func (h *Host) resolvePrimitive(p *codegen.Property, s *model.Schema) {
	p.BaseType = h.tables.MapType(AbstractType(s))
	p.DataType = p.BaseType
	p.IsDate = s.IsDate()
	p.IsDateTime = s.IsDateTime()

	if len(s.Enum) > 0 {
		p.IsEnum = true
		p.EnumName = naming.EnumName(p.Name)
		p.EnumValues = enumValues(s.Enum)
		p.DataTypeWithEnum = p.EnumName
	}
}

// EnumConstant derives an enum constant name from a value.
func EnumConstant(value string) string {
	name := strings.ToUpper(naming.SanitizeIdentifier(strings.NewReplacer("-", "_", " ", "_", ".", "_").Replace(value)))
	if name == "" {
		return "EMPTY"
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "_" + name
	}
	return name
}

func enumValues(values []any) []string {
	strs := make([]string, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}
		strs = append(strs, fmt.Sprint(v))
	}
	return strs
}

func defaultValue(p *codegen.Property, s *model.Schema) string {
	if s.Default == nil || p.IsList {
		return ""
	}
	if p.IsEnum {
		return p.EnumName + "." + EnumConstant(fmt.Sprint(s.Default))
	}
	switch v := s.Default.(type) {
	case string:
		if p.DataType != "kotlin.String" {
			return ""
		}
		return StringLiteral(v)
	case bool:
		return strconv.FormatBool(v)
	case int, int64, float64:
		switch p.DataType {
		case "kotlin.Long":
			return fmt.Sprintf("%vL", v)
		case "kotlin.Float":
			return fmt.Sprintf("%vf", v)
		case "kotlin.Int":
			return fmt.Sprint(v)
		case "kotlin.Double":
			if f, ok := v.(float64); ok {
				return strconv.FormatFloat(f, 'f', -1, 64)
			}
			return fmt.Sprintf("%v.0", v)
		case "java.math.BigDecimal":
			return fmt.Sprintf("java.math.BigDecimal(\"%v\")", v)
		}
	}
	return ""
}
