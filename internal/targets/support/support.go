// Package support renders the project-level files that sit next to the
// models: date formats, adapter registration, authorization and build
// scripts.
package support

import (
	"fmt"
	"path"

	"github.com/touchin/ticodegen/internal/codegen"
	"github.com/touchin/ticodegen/internal/enrich"
	"github.com/touchin/ticodegen/internal/registry"
	"github.com/touchin/ticodegen/internal/targets"
	"github.com/touchin/ticodegen/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "support"
}

type templateData struct {
	ProjectName    string
	GroupID        string
	PackageName    string
	ModelPackage   string
	JodaTime       bool
	Java8          bool
	DateFormats    []registry.DateFormat
	Adapters       []string
	AdapterImports []string
	DefaultImports []string
	Securities     []security
}

type security struct {
	*codegen.Security
	VendorExtensions map[string]any
}

type supportFile struct {
	template string
	path     string
}

func (t *Target) files(ctx *targets.Context) []supportFile {
	source := func(name string) string {
		return targets.SourcePath(ctx.PackageName, name)
	}

	files := []supportFile{
		{"kotlin/APIDateFormat.kt.tmpl", source("APIDateFormat.kt")},
	}
	switch ctx.Support.Granularity {
	case enrich.GranularityEnum:
		files = append(files,
			supportFile{"kotlin/EnumJsonAdapters.kt.tmpl", source("EnumJsonAdapters.kt")},
			supportFile{"kotlin/GeneratedDateAdapter.kt.tmpl", source("GeneratedDateAdapter.kt")},
		)
	default:
		files = append(files, supportFile{"kotlin/JsonAdapters.kt.tmpl", source("JsonAdapters.kt")})
	}
	return append(files,
		supportFile{"kotlin/AuthorizationInterceptor.kt.tmpl", source("AuthorizationInterceptor.kt")},
		supportFile{"kotlin/AndroidManifest.xml.tmpl", path.Join("src", "main", "AndroidManifest.xml")},
		supportFile{"kotlin/build.gradle.kts.tmpl", "build.gradle.kts"},
		supportFile{"kotlin/settings.gradle.tmpl", "settings.gradle"},
	)
}

func (t *Target) Generate(engine templates.Engine, ctx *targets.Context) ([]targets.File, error) {
	data := templateData{
		ProjectName:    ctx.ProjectName,
		GroupID:        ctx.GroupID,
		PackageName:    ctx.PackageName,
		ModelPackage:   ctx.ModelPackage,
		JodaTime:       ctx.Tables.JodaTime,
		Java8:          ctx.Tables.Java8,
		DateFormats:    ctx.Support.DateFormats,
		Adapters:       ctx.Support.Adapters,
		AdapterImports: ctx.Support.AdapterImports,
		DefaultImports: ctx.Tables.DefaultIncludes.Items(),
	}
	for _, s := range ctx.Securities {
		data.Securities = append(data.Securities, security{
			Security:         s,
			VendorExtensions: s.Markers.VendorExtensions(),
		})
	}

	var out []targets.File
	for _, f := range t.files(ctx) {
		content, err := engine.Execute(f.template, data)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", f.path, err)
		}
		out = append(out, targets.File{Path: f.path, Content: content})
	}
	return out, nil
}
