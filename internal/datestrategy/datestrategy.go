// Package datestrategy resolves how date and time values are represented in
// generated code.
package datestrategy

import (
	"errors"
	"fmt"

	"github.com/touchin/ticodegen/internal/codegen"
)

type Strategy string

const (
	String   Strategy = "string"
	Java8    Strategy = "java8"
	JodaTime Strategy = "jodaTime"

	Default = JodaTime
)

const (
	jodaType   = "DateTime"
	jodaImport = "org.joda.time.DateTime"
	stringType = "kotlin.String"
)

var (
	ErrUnknownStrategy = errors.New("unknown date library")
	ErrAlreadyApplied  = errors.New("date library already applied")
)

// Strategies lists the accepted tokens.
func Strategies() []Strategy {
	return []Strategy{String, Java8, JodaTime}
}

// Parse maps a configuration token to a Strategy. The empty token selects
// the default.
func Parse(token string) (Strategy, error) {
	if token == "" {
		return Default, nil
	}
	for _, s := range Strategies() {
		if string(s) == token {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: string, java8, jodaTime)", ErrUnknownStrategy, token)
}

// Apply rewrites the type tables for the strategy. It must run once per
// tables instance, before any property is resolved against them.
func (s Strategy) Apply(t *codegen.TypeTables) error {
	if t.DateLibrary != "" {
		return fmt.Errorf("%w: %s", ErrAlreadyApplied, t.DateLibrary)
	}

	switch s {
	case JodaTime:
		t.JodaTime = true
		for _, abstract := range []string{"date", "date-time", "time", "DateTime"} {
			t.TypeMapping[abstract] = jodaType
		}
		t.ImportMapping[jodaType] = jodaImport
		t.DefaultIncludes.Add(jodaImport)
	case String:
		for _, abstract := range []string{"date", "date-time", "time", "Date", "DateTime"} {
			t.TypeMapping[abstract] = stringType
		}
	case Java8:
		t.Java8 = true
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}

	t.DateLibrary = string(s)
	return nil
}
