package kotlin

import (
	"strings"
	"text/template"
)

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"enumConstant":  EnumConstant,
		"kdoc":          KDoc,
		"stringLiteral": StringLiteral,
		"lower":         strings.ToLower,
		"dict":          Dict,
	}
}

// KDoc renders a description as a KDoc block at the given indentation.
func KDoc(s string, indent int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	pad := strings.Repeat(" ", indent)
	var b strings.Builder
	b.WriteString(pad + "/**\n")
	for _, line := range strings.Split(s, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), "*/", "*&#47;")
		if line == "" {
			b.WriteString(pad + " *\n")
			continue
		}
		b.WriteString(pad + " * " + line + "\n")
	}
	b.WriteString(pad + " */")
	return b.String()
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"$", `\$`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// StringLiteral quotes s as a Kotlin string literal.
func StringLiteral(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}

// Dict creates a map from key-value pairs for use in templates.
func Dict(values ...any) map[string]any {
	if len(values)%2 != 0 {
		return nil
	}
	dict := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			continue
		}
		dict[key] = values[i+1]
	}
	return dict
}
