// Package typescript emits TypeScript type declarations for storage-layer
// collection definitions.
package typescript

import (
	"strings"

	"github.com/WorldBrain/storex-typescript-generation/schema"
)

// PkStrategy selects the TypeScript representation of auto-generated
// primary keys.
// MUST be one of: "string", "int", "generic"
type PkStrategy string

const (
	// PkStrategyString represents auto-generated primary keys as strings.
	PkStrategyString PkStrategy = "string"

	// PkStrategyInt represents auto-generated primary keys as numbers.
	PkStrategyInt PkStrategy = "int"

	// PkStrategyGeneric leaves both representations open, as a union.
	PkStrategyGeneric PkStrategy = "generic"
)

// TypeExpr returns the TypeScript type expression for the strategy.
func (s PkStrategy) TypeExpr() string {
	switch s {
	case PkStrategyString:
		return "string"
	case PkStrategyInt:
		return "number"
	case PkStrategyGeneric:
		return "string | number"
	default:
		return "string | number"
	}
}

// ImportResolver maps a collection name to the module path its generated
// type is imported from. Returning "" suppresses the import.
type ImportResolver func(collection string) string

// GeneratorConfig provides emitter configuration.
type GeneratorConfig struct {
	// PkStrategy selects the auto-generated primary key representation.
	PkStrategy PkStrategy

	// TypeMappings overrides the built-in field kind to type mapping.
	// e.g. map[schema.FieldKind]string{"media": "Blob"}
	TypeMappings map[schema.FieldKind]string

	// SkipKinds lists field kinds that are never emitted.
	SkipKinds []schema.FieldKind

	// AlwaysIncludePk emits the primary-key segment unconditionally
	// instead of gating it behind the WithPk type parameter.
	AlwaysIncludePk bool

	// Formatting
	IndentStyle string // "space" or "tab"
	IndentSize  int    // Spaces per indent level (when IndentStyle is "space")
}

// indentUnit returns one indentation level per the formatting config.
func (c GeneratorConfig) indentUnit() string {
	if c.IndentStyle == "tab" {
		return "\t"
	}
	size := c.IndentSize
	if size <= 0 {
		size = 2
	}
	return strings.Repeat(" ", size)
}
