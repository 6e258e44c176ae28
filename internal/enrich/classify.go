package enrich

import (
	"fmt"
	"strings"

	"github.com/touchin/ticodegen/internal/codegen"
	"github.com/touchin/ticodegen/internal/model"
	"github.com/touchin/ticodegen/internal/naming"
	"github.com/touchin/ticodegen/internal/registry"
	"go.uber.org/zap"
)

// resolveAlias copies the traits of the aliased schema onto prop.
func resolveAlias(prop *codegen.Property, schema *model.Schema) {
	prop.Markers.Alias = true

	if prop.Description == "" {
		prop.Description = schema.Description
	}

	if len(schema.Extensions) > 0 {
		if prop.Extensions == nil {
			prop.Extensions = make(map[string]any, len(schema.Extensions))
		}
		for k, v := range schema.Extensions {
			prop.Extensions[k] = v
		}
	}

	if schema.IsDate() {
		prop.IsDate = true
	}
	if schema.IsDateTime() {
		prop.IsDateTime = true
	}
}

// markDate sets either the ISO-8601 or the custom format markers, never both.
func (p *Pass) markDate(regs *registry.Registries, m *codegen.Model, prop *codegen.Property) error {
	raw, custom := prop.CustomDateFormat()

	switch {
	case (prop.IsDate || prop.IsDateTime) && !custom:
		prop.Markers.ISO8601Date = true
		prop.Markers.DateFormat = p.opts.Granularity == GranularityModel
	case custom:
		pattern, ok := raw.(string)
		if !ok || strings.TrimSpace(pattern) == "" {
			return p.invalidFormat(m, prop, fmt.Errorf("%w: %v", ErrInvalidDateFormat, raw))
		}
		name := naming.DateFormatName(pattern)
		if name == "" {
			return p.invalidFormat(m, prop, fmt.Errorf("%w: %q has no identifier characters", ErrInvalidDateFormat, pattern))
		}
		if existing, ok := regs.DateFormats.Pattern(name); ok && existing != pattern {
			return p.invalidFormat(m, prop, fmt.Errorf("%w: %q and %q both map to %s", ErrDateFormatCollision, existing, pattern, name))
		}

		prop.Markers.DateFormatName = name
		prop.Markers.DateFormat = p.opts.Granularity == GranularityModel
		if regs.DateFormats.Add(name, pattern) {
			p.logger.Debug("registered date format", zap.String("name", name), zap.String("pattern", pattern))
		}
	}
	return nil
}
