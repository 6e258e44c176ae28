package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"text/template"
)

type Engine interface {
	Execute(name string, data any) (string, error)
}

// TextTemplateEngine renders embedded templates. Templates found under the
// custom directory replace embedded ones with the same relative name.
type TextTemplateEngine struct {
	templates *template.Template
	overrides []string
}

func NewEngine(embedded fs.FS, customDir string, funcs template.FuncMap) (*TextTemplateEngine, error) {
	e := &TextTemplateEngine{
		templates: template.New("").Funcs(funcs),
	}

	if _, err := e.parseFS(embedded, "embedded"); err != nil {
		return nil, fmt.Errorf("loading embedded templates: %w", err)
	}

	if customDir != "" {
		names, err := e.parseFS(os.DirFS(customDir), "custom")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading custom templates: %w", err)
		}
		e.overrides = names
	}

	return e, nil
}

// parseFS parses every .tmpl file of fsys under its slash-separated path and
// returns the names it defined.
func (e *TextTemplateEngine) parseFS(fsys fs.FS, origin string) ([]string, error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s template %s: %w", origin, path, err)
		}
		name := strings.TrimPrefix(path, "templates/")
		if _, err := e.templates.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("parsing %s template %s: %w", origin, path, err)
		}
		names = append(names, name)
		return nil
	})
	return names, err
}

// Has reports whether a template with the given name is loaded.
func (e *TextTemplateEngine) Has(name string) bool {
	return e.templates.Lookup(name) != nil
}

// Overrides lists the templates loaded from the custom directory.
func (e *TextTemplateEngine) Overrides() []string {
	return slices.Clone(e.overrides)
}

func (e *TextTemplateEngine) Execute(name string, data any) (string, error) {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}
