// Package naming holds the string transformations used to derive Kotlin
// identifiers from OpenAPI names.
package naming

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ReservedTypePrefix is prepended to type names that collide with a keyword.
const ReservedTypePrefix = "Model"

var nonIdentifier = regexp.MustCompile(`[^A-Za-z0-9_]`)

// A Caser is stateful, so the shared one is used under titleMu.
var (
	titleMu sync.Mutex
	title   = cases.Title(language.English, cases.NoLower)
)

// SanitizeIdentifier removes every character outside [A-Za-z0-9_].
func SanitizeIdentifier(s string) string {
	return nonIdentifier.ReplaceAllString(s, "")
}

// DateFormatName derives the registry key for a custom date format pattern.
// Dots become underscores before the remaining separators are stripped, so
// "dd.MM.yyyy" and "ddMMyyyy" never share a key.
func DateFormatName(pattern string) string {
	return SanitizeIdentifier(strings.ReplaceAll(pattern, ".", "_"))
}

// EscapeReservedType returns the alias used for a type name that collides
// with a reserved word. Callers check the collision first.
func EscapeReservedType(name string) string {
	return ReservedTypePrefix + name
}

// EnumName names the inline enum generated for a property.
func EnumName(propertyName string) string {
	return capitalize(propertyName)
}

// Camelize joins the words of s with the first letter of each capitalized.
// With lowerFirst the very first letter is lowercased instead.
func Camelize(s string, lowerFirst bool) string {
	var result strings.Builder
	for _, word := range splitWords(s) {
		result.WriteString(capitalize(word))
	}
	out := result.String()
	if lowerFirst {
		return decapitalize(out)
	}
	return out
}

// ParamName derives a parameter or variable identifier from a name.
// Names starting with a digit get a leading underscore.
func ParamName(s string) string {
	name := SanitizeIdentifier(Camelize(s, true))
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		return "_" + name
	}
	return name
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// capitalize upper-cases the first rune and leaves the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(titleRune(r)) + s[size:]
}

// titleRune maps r to its single-rune title case. Letters whose title case
// expands to several runes, like 'ß', are kept as they are.
func titleRune(r rune) rune {
	titleMu.Lock()
	t := title.String(string(r))
	titleMu.Unlock()
	if utf8.RuneCountInString(t) != 1 {
		return unicode.ToTitle(r)
	}
	tr, _ := utf8.DecodeRuneInString(t)
	return tr
}

func decapitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
