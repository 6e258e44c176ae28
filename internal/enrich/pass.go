package enrich

import (
	"fmt"

	"github.com/touchin/ticodegen/internal/codegen"
	"github.com/touchin/ticodegen/internal/naming"
	"github.com/touchin/ticodegen/internal/registry"
	"go.uber.org/zap"
)

// Pass is the model enrichment pass. It holds no run state: everything that
// accumulates across models goes into the registries passed to each call.
type Pass struct {
	host   Host
	opts   Options
	logger *zap.Logger
}

func NewPass(host Host, opts Options) *Pass {
	if opts.Granularity == "" {
		opts.Granularity = GranularityModel
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pass{
		host:   host,
		opts:   opts,
		logger: logger.Named("enrich"),
	}
}

// Model enriches every property of m in declaration order. A top-level
// enum model registers its own nested adapter.
func (p *Pass) Model(regs *registry.Registries, m *codegen.Model) error {
	if len(m.EnumValues) > 0 {
		p.addAdapter(regs, m.Name+".JsonAdapter", m.Name)
	}
	for _, prop := range m.Properties {
		if err := p.Property(regs, m, prop); err != nil {
			return err
		}
	}
	return nil
}

// Property enriches a single property owned by m.
func (p *Pass) Property(regs *registry.Registries, m *codegen.Model, prop *codegen.Property) error {
	if schema, ok := p.host.AliasSchema(prop.BaseType); ok {
		resolveAlias(prop, schema)
	}

	p.registerEnumAdapter(regs, m, prop)

	if err := p.classifyDates(regs, m, prop); err != nil {
		return err
	}

	if prop.IsObject && p.host.IsReservedWord(prop.DataType) {
		escaped := naming.EscapeReservedType(prop.DataType)
		p.logger.Debug("escaped reserved type",
			zap.String("model", m.Name),
			zap.String("property", prop.Name),
			zap.String("type", prop.DataType),
			zap.String("alias", escaped),
		)
		prop.DataType = escaped
		prop.DataTypeWithEnum = escaped
	}

	return nil
}

// classifyDates marks date traits on prop and, for lists, on its elements.
func (p *Pass) classifyDates(regs *registry.Registries, m *codegen.Model, prop *codegen.Property) error {
	if err := p.markDate(regs, m, prop); err != nil {
		return err
	}

	if p.opts.Granularity == GranularityModel && prop.IsDateValued() {
		m.Markers.HasDate = true
		p.addAdapter(regs, m.Name+"."+m.Name+"JsonAdapter", m.Name)
	}

	if prop.IsList && prop.Items != nil {
		if schema, ok := p.host.AliasSchema(prop.Items.BaseType); ok {
			resolveAlias(prop.Items, schema)
		}
		return p.classifyDates(regs, m, prop.Items)
	}
	return nil
}

func (p *Pass) registerEnumAdapter(regs *registry.Registries, m *codegen.Model, prop *codegen.Property) {
	if !prop.IsEnum {
		return
	}
	enumName := prop.EnumName
	if enumName == "" {
		enumName = naming.EnumName(prop.Name)
	}
	p.addAdapter(regs, m.Name+"."+enumName+".JsonAdapter", m.Name)
}

func (p *Pass) addAdapter(regs *registry.Registries, adapter, modelName string) {
	if regs.Adapters.Has(adapter) {
		return
	}
	importPath := p.modelImport(modelName)
	regs.Adapters.Add(adapter, importPath)
	p.logger.Debug("registered adapter", zap.String("adapter", adapter), zap.String("import", importPath))
}

func (p *Pass) modelImport(modelName string) string {
	if p.opts.ModelPackage == "" {
		return modelName
	}
	return p.opts.ModelPackage + "." + modelName
}

func (p *Pass) invalidFormat(m *codegen.Model, prop *codegen.Property, err error) error {
	if !p.opts.LenientDateFormats {
		return fmt.Errorf("model %s, property %s: %w", m.Name, prop.Name, err)
	}
	p.logger.Warn("skipping custom date format",
		zap.String("model", m.Name),
		zap.String("property", prop.Name),
		zap.Error(err),
	)
	return nil
}
