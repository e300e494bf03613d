// Package schema defines the storage-layer data model consumed by the
// TypeScript generator: collection definitions, field definitions,
// relationships, and the registry handle that supplies them.
package schema

// FieldKind identifies the declared primitive kind of a field.
// Beyond the built-in kinds below, arbitrary custom kind strings are
// permitted; resolving those is the caller's job via a type-map override.
type FieldKind string

const (
	KindString     FieldKind = "string"
	KindText       FieldKind = "text"
	KindJSON       FieldKind = "json"
	KindDatetime   FieldKind = "datetime"
	KindTimestamp  FieldKind = "timestamp"
	KindBoolean    FieldKind = "boolean"
	KindFloat      FieldKind = "float"
	KindInt        FieldKind = "int"
	KindAutoPk     FieldKind = "auto-pk"
	KindForeignKey FieldKind = "foreign-key"
)

// FieldDefinition describes one field of a collection.
type FieldDefinition struct {
	// Name is the field name as it appears in generated declarations.
	Name string

	// Kind is the declared primitive kind.
	Kind FieldKind

	// Optional marks fields that may be absent from stored objects.
	Optional bool
}

// CollectionDefinition describes one collection as supplied by the registry.
// Definitions are read-only inputs; the generator never mutates them.
type CollectionDefinition struct {
	// PkIndex is the name of the primary-key field. The primary key is
	// emitted as its own declaration segment, never as a plain field.
	PkIndex string

	// Fields holds the collection's fields in declaration order.
	Fields []FieldDefinition

	// Relationships holds forward relationship declarations in order.
	Relationships []Relationship

	// ReverseRelationships holds the pre-inverted view of other
	// collections' child-of references to this collection.
	ReverseRelationships []ReverseRelationship
}

// Field looks up a field definition by name. Returns nil if not found.
func (d *CollectionDefinition) Field(name string) *FieldDefinition {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i]
		}
	}
	return nil
}

// Validate checks the definition for structural issues.
// Returns all validation errors found (not just the first).
func (d *CollectionDefinition) Validate() []error {
	var errors []error

	fieldNames := make(map[string]bool)
	for _, f := range d.Fields {
		if fieldNames[f.Name] {
			errors = append(errors, &ValidationError{
				Code:    "duplicate_field",
				Message: "duplicate field name: " + f.Name,
			})
		}
		fieldNames[f.Name] = true
	}

	aliases := make(map[string]bool)
	for _, rel := range d.Relationships {
		alias := rel.RelationAlias()
		if aliases[alias] {
			errors = append(errors, &ValidationError{
				Code:    "duplicate_alias",
				Message: "duplicate relationship alias: " + alias,
			})
		}
		aliases[alias] = true
	}

	for _, rr := range d.ReverseRelationships {
		if rr.Alias == "" {
			errors = append(errors, &ValidationError{
				Code:    "empty_reverse_alias",
				Message: "reverse relationship from " + rr.Source + " has an empty alias",
			})
			continue
		}
		if aliases[rr.Alias] {
			errors = append(errors, &ValidationError{
				Code:    "duplicate_alias",
				Message: "duplicate relationship alias: " + rr.Alias,
			})
		}
		aliases[rr.Alias] = true
	}

	return errors
}

// ValidationError represents a definition validation error.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Collection is the collection that triggered the warning, if applicable.
	Collection string
}
