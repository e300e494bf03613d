package typescript

import (
	"github.com/WorldBrain/storex-typescript-generation/schema"
)

// DefaultTypeMap maps the built-in field kinds to TypeScript type names.
// Caller-supplied TypeMappings take precedence over these entries.
var DefaultTypeMap = map[schema.FieldKind]string{
	schema.KindString:    "string",
	schema.KindText:      "string",
	schema.KindJSON:      "any",
	schema.KindDatetime:  "Date",
	schema.KindTimestamp: "number",
	schema.KindBoolean:   "boolean",
	schema.KindFloat:     "number",
	schema.KindInt:       "number",
}

// resolveFieldType resolves a field kind to a TypeScript type expression.
// Auto-generated primary keys resolve via the configured PkStrategy rather
// than the kind tables. The collection and field names are carried only for
// error reporting.
func (e *Emitter) resolveFieldType(collection, field string, kind schema.FieldKind) (string, error) {
	if kind == schema.KindAutoPk {
		return e.config.PkStrategy.TypeExpr(), nil
	}
	if t, ok := e.config.TypeMappings[kind]; ok {
		return t, nil
	}
	if t, ok := DefaultTypeMap[kind]; ok {
		return t, nil
	}
	return "", &UnresolvedTypeError{Collection: collection, Field: field, FieldKind: kind}
}
