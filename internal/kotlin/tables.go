package kotlin

import "github.com/touchin/ticodegen/internal/codegen"

const (
	listType = "kotlin.collections.List"
	mapType  = "kotlin.collections.Map"
	anyType  = "kotlin.Any"
)

// DefaultTypeTables returns the Kotlin type mapping before any date
// strategy is applied.
func DefaultTypeTables() *codegen.TypeTables {
	t := codegen.NewTypeTables()
	for abstract, concrete := range map[string]string{
		"string":    "kotlin.String",
		"boolean":   "kotlin.Boolean",
		"integer":   "kotlin.Int",
		"long":      "kotlin.Long",
		"float":     "kotlin.Float",
		"double":    "kotlin.Double",
		"number":    "java.math.BigDecimal",
		"date":      "java.time.LocalDate",
		"date-time": "java.time.OffsetDateTime",
		"time":      "java.time.LocalTime",
		"array":     listType,
		"list":      listType,
		"map":       mapType,
		"object":    anyType,
		"binary":    "kotlin.ByteArray",
		"ByteArray": "kotlin.ByteArray",
	} {
		t.TypeMapping[abstract] = concrete
	}
	return t
}
