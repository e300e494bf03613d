package typescript

import (
	"fmt"

	"github.com/WorldBrain/storex-typescript-generation/schema"
)

// UnresolvedTypeError reports a field kind with no entry in either the
// caller-supplied type mappings or the default type map. It names the
// offending collection and field so the caller can extend the map.
type UnresolvedTypeError struct {
	Collection string
	Field      string
	FieldKind  schema.FieldKind
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("no TypeScript type known for field %s.%s (kind %q)", e.Collection, e.Field, e.FieldKind)
}

// UnsupportedRelationshipError reports a relationship variant outside the
// two the schema model promises.
type UnsupportedRelationshipError struct {
	Collection string
	Kind       string
}

func (e *UnsupportedRelationshipError) Error() string {
	return fmt.Sprintf("collection %s has a relationship of unsupported kind %s", e.Collection, e.Kind)
}

// MissingPrimaryKeyError reports a collection whose primary-key index is not
// a plain field name. This is a precondition violation from the upstream
// schema, not recoverable here.
type MissingPrimaryKeyError struct {
	Collection string
}

func (e *MissingPrimaryKeyError) Error() string {
	return fmt.Sprintf("collection %s has no plain field name as its primary-key index", e.Collection)
}
