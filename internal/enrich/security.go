package enrich

import (
	"github.com/touchin/ticodegen/internal/codegen"
	"github.com/touchin/ticodegen/internal/naming"
)

// Securities attaches the camel-case and parameter name forms to every
// security scheme.
func (p *Pass) Securities(securities []*codegen.Security) {
	for _, s := range securities {
		s.Markers.CamelCaseName = naming.Camelize(s.Name, false)
		s.Markers.ParamName = naming.ParamName(s.Name)
	}
}
