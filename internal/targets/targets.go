// Package targets holds what every output target receives for a run.
package targets

import (
	"maps"
	"path"
	"strings"

	"github.com/touchin/ticodegen/internal/codegen"
	"github.com/touchin/ticodegen/internal/enrich"
)

// SourceFolder is where Kotlin sources live inside the generated project.
const SourceFolder = "src/main/kotlin"

// File is one rendered output, relative to the output directory.
type File struct {
	Path    string
	Content string
}

// Context is the enriched state of a finished run.
type Context struct {
	ProjectName  string
	GroupID      string
	PackageName  string
	ModelPackage string

	Tables     *codegen.TypeTables
	Models     []*codegen.Model
	Securities []*codegen.Security
	Support    enrich.SupportingData
}

// SourcePath places a Kotlin file of the given package under SourceFolder.
func SourcePath(pkg, filename string) string {
	return path.Join(SourceFolder, strings.ReplaceAll(pkg, ".", "/"), filename)
}

// VendorExtensions lays the legacy marker extensions over the document
// extensions, the flat view custom templates key on.
func VendorExtensions(document, markers map[string]any) map[string]any {
	ext := make(map[string]any, len(document)+len(markers))
	maps.Copy(ext, document)
	maps.Copy(ext, markers)
	return ext
}
