package kotlin

import "strings"

var reservedWords = map[string]bool{
	"abstract": true, "annotation": true, "as": true, "break": true, "case": true,
	"catch": true, "class": true, "companion": true, "const": true, "constructor": true,
	"continue": true, "crossinline": true, "data": true, "delegate": true, "do": true,
	"else": true, "enum": true, "external": true, "false": true, "final": true,
	"finally": true, "for": true, "fun": true, "if": true, "in": true,
	"infix": true, "init": true, "inline": true, "inner": true, "interface": true,
	"internal": true, "is": true, "it": true, "lateinit": true, "lazy": true,
	"noinline": true, "null": true, "object": true, "open": true, "operator": true,
	"out": true, "override": true, "package": true, "private": true, "protected": true,
	"public": true, "reified": true, "return": true, "sealed": true, "super": true,
	"suspend": true, "tailrec": true, "this": true, "throw": true, "true": true,
	"try": true, "typealias": true, "typeof": true, "val": true, "var": true,
	"vararg": true, "when": true, "while": true,
}

// IsReservedWord reports whether name is a Kotlin keyword, ignoring case.
func IsReservedWord(name string) bool {
	return reservedWords[strings.ToLower(name)]
}

// EscapeVarName back-ticks identifiers that are keywords.
func EscapeVarName(name string) string {
	if IsReservedWord(name) {
		return "`" + name + "`"
	}
	return name
}
