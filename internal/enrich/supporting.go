package enrich

import "github.com/touchin/ticodegen/internal/registry"

// SupportingData is the aggregate view of a finished run handed to the
// supporting-file templates.
type SupportingData struct {
	Granularity    Granularity
	DateFormats    []registry.DateFormat
	Adapters       []string
	AdapterImports []string
}

// SupportingData snapshots the registries. Call it once all models are
// enriched.
func (p *Pass) SupportingData(regs *registry.Registries) SupportingData {
	return SupportingData{
		Granularity:    p.opts.Granularity,
		DateFormats:    regs.DateFormats.Entries(),
		Adapters:       regs.Adapters.Names(),
		AdapterImports: regs.Adapters.Imports(),
	}
}
