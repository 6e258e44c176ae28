package loader

import (
	"fmt"
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
	"github.com/touchin/ticodegen/internal/model"
	"go.yaml.in/yaml/v4"
)

type transformer struct {
	componentSchemas map[*base.Schema]string
}

func Transform(result *Result) (*model.Spec, error) {
	doc := result.Document.Model

	t := &transformer{
		componentSchemas: make(map[*base.Schema]string),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			t.componentSchemas[schemaProxy.Schema()] = "#/components/schemas/" + name
		}
	}

	spec := &model.Spec{
		Info: transformInfo(doc.Info),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			schema, err := t.transformSchema(name, schemaProxy.Schema())
			if err != nil {
				return nil, fmt.Errorf("schema %s: %w", name, err)
			}
			if schema != nil {
				spec.Schemas = append(spec.Schemas, *schema)
			}
		}
	}

	if doc.Components != nil && doc.Components.SecuritySchemes != nil {
		for name, scheme := range doc.Components.SecuritySchemes.FromOldest() {
			spec.Security = append(spec.Security, transformSecurityScheme(name, scheme))
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func (t *transformer) transformSchemaProxy(proxy *base.SchemaProxy) (*model.Schema, error) {
	if proxy == nil {
		return nil, nil
	}

	ref := proxy.GetReference()
	if ref == "" {
		if resolved, ok := t.componentSchemas[proxy.Schema()]; ok {
			return &model.Schema{Ref: resolved}, nil
		}
	} else if strings.HasPrefix(ref, "#/components/schemas/") {
		// Component targets are resolved by name downstream.
		return &model.Schema{Ref: ref}, nil
	}

	schema, err := t.transformSchema("", proxy.Schema())
	if err != nil {
		return nil, err
	}
	if schema != nil && ref != "" {
		schema.Ref = ref
	}
	return schema, nil
}

func (t *transformer) transformSchema(name string, s *base.Schema) (*model.Schema, error) {
	if s == nil {
		return nil, nil
	}

	schema := &model.Schema{
		Name:        name,
		Description: s.Description,
		Format:      s.Format,
		Nullable:    boolPtr(s.Nullable),
		Deprecated:  boolPtr(s.Deprecated),
	}

	// 3.1 spells nullability as a "null" member of the type list.
	for _, typ := range s.Type {
		if typ == string(model.TypeNull) {
			schema.Nullable = true
			continue
		}
		if schema.Type == "" {
			schema.Type = model.SchemaType(typ)
		}
	}

	var err error
	if schema.Default, err = decodeNode(s.Default); err != nil {
		return nil, fmt.Errorf("decoding default: %w", err)
	}

	for _, e := range s.Enum {
		if e != nil {
			schema.Enum = append(schema.Enum, e.Value)
		}
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			propSchema, err := t.transformSchemaProxy(propProxy)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", propName, err)
			}
			if propSchema != nil && propSchema.Name == "" {
				propSchema.Name = propName
			}
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: propSchema,
			})
		}
	}

	schema.Required = s.Required

	if s.Items != nil && s.Items.A != nil {
		if schema.Items, err = t.transformSchemaProxy(s.Items.A); err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
	}

	if s.AdditionalProperties != nil && s.AdditionalProperties.A != nil {
		if schema.AdditionalProperties, err = t.transformSchemaProxy(s.AdditionalProperties.A); err != nil {
			return nil, fmt.Errorf("additional properties: %w", err)
		}
	}

	if schema.Extensions, err = parseExtensions(s.Extensions); err != nil {
		return nil, err
	}

	return schema, nil
}

// parseExtensions decodes every x-* extension node into a plain Go value.
func parseExtensions(extensions *orderedmap.Map[string, *yaml.Node]) (map[string]any, error) {
	if extensions == nil {
		return nil, nil
	}

	var ext map[string]any
	for pair := extensions.First(); pair != nil; pair = pair.Next() {
		key := pair.Key()
		if !strings.HasPrefix(key, "x-") {
			continue
		}
		value, err := decodeNode(pair.Value())
		if err != nil {
			return nil, fmt.Errorf("decoding extension %s: %w", key, err)
		}
		if ext == nil {
			ext = make(map[string]any)
		}
		ext[key] = value
	}
	return ext, nil
}

func decodeNode(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func transformSecurityScheme(name string, scheme *v3.SecurityScheme) model.SecurityScheme {
	return model.SecurityScheme{
		Name:        name,
		Type:        model.SecuritySchemeType(scheme.Type),
		Description: scheme.Description,
		In:          scheme.In,
		KeyName:     scheme.Name,
		Scheme:      scheme.Scheme,
	}
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
