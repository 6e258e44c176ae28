// Package enrich refines the intermediate model before rendering: it
// classifies date, enum and alias properties, escapes reserved type names
// and feeds the run registries.
package enrich

import (
	"errors"
	"fmt"

	"github.com/touchin/ticodegen/internal/model"
	"go.uber.org/zap"
)

var (
	ErrInvalidDateFormat   = errors.New("invalid custom date format")
	ErrDateFormatCollision = errors.New("custom date formats share a name")
	ErrUnknownGranularity  = errors.New("unknown adapter granularity")
)

// Host is the part of the code generator the pass depends on.
type Host interface {
	// IsReservedWord reports whether name is a keyword of the target language.
	IsReservedWord(name string) bool
	// AliasSchema returns the schema behind a type alias name.
	AliasSchema(name string) (*model.Schema, bool)
}

// Granularity selects which JSON adapters the pass registers.
type Granularity string

const (
	// GranularityModel registers enum adapters plus one adapter per model
	// that holds a date.
	GranularityModel Granularity = "model"
	// GranularityEnum registers enum adapters only.
	GranularityEnum Granularity = "enum"
)

// ParseGranularity maps a configuration token to a Granularity; the empty
// token selects GranularityModel.
func ParseGranularity(token string) (Granularity, error) {
	switch Granularity(token) {
	case "", GranularityModel:
		return GranularityModel, nil
	case GranularityEnum:
		return GranularityEnum, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: model, enum)", ErrUnknownGranularity, token)
	}
}

type Options struct {
	// ModelPackage qualifies adapter imports, e.g. "ru.touchin.SwaggerAPI.models".
	ModelPackage string
	Granularity  Granularity
	// LenientDateFormats skips unusable custom date formats with a warning
	// instead of failing the run.
	LenientDateFormats bool
	Logger             *zap.Logger
}
