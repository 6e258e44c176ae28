// Package templates holds the embedded Kotlin templates.
package templates

import "embed"

//go:embed kotlin/*.tmpl
var FS embed.FS
