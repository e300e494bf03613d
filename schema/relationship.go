package schema

// RelationshipKind identifies the category of a relationship.
type RelationshipKind int

const (
	// KindChildOf is a many-to-one (or one-to-one when Single) reference
	// from this collection to a parent collection.
	KindChildOf RelationshipKind = iota

	// KindConnects is a many-to-many relationship between two collections.
	// Generation of connects relationships is not supported; they are
	// skipped with a warning.
	KindConnects
)

// String returns the string representation of the relationship kind.
func (k RelationshipKind) String() string {
	switch k {
	case KindChildOf:
		return "ChildOf"
	case KindConnects:
		return "Connects"
	default:
		return "Unknown"
	}
}

// Relationship is the base interface for relationship declarations.
// The schema model promises exactly two variants: ChildOfRelationship and
// ConnectsRelationship. Anything else is a fatal configuration error.
type Relationship interface {
	// Kind returns the relationship kind for type switching.
	Kind() RelationshipKind

	// RelationAlias returns the forward field name of the relationship.
	RelationAlias() string
}

// ChildOfRelationship declares that this collection holds a reference to
// exactly one object in a parent collection.
type ChildOfRelationship struct {
	// Alias is the field name the reference is exposed under.
	Alias string

	// ReverseAlias is the field name the inverse view is exposed under
	// on the target collection.
	ReverseAlias string

	// TargetCollection is the referenced (parent) collection name.
	TargetCollection string

	// Single marks one-to-one relationships: the reverse side holds at
	// most one object instead of a collection.
	Single bool
}

// Kind returns KindChildOf.
func (r *ChildOfRelationship) Kind() RelationshipKind { return KindChildOf }

// RelationAlias returns the forward field name.
func (r *ChildOfRelationship) RelationAlias() string { return r.Alias }

// ConnectsRelationship declares a many-to-many relationship between two
// collections.
type ConnectsRelationship struct {
	// Alias is the field name the relationship would be exposed under.
	Alias string

	// Collections names the two connected collections.
	Collections [2]string
}

// Kind returns KindConnects.
func (r *ConnectsRelationship) Kind() RelationshipKind { return KindConnects }

// RelationAlias returns the forward field name.
func (r *ConnectsRelationship) RelationAlias() string { return r.Alias }

// ReverseRelationship is the inverse view of a relationship, exposed on the
// referenced collection. The registry computes these before generation runs.
type ReverseRelationship struct {
	// Alias is the field name the inverse view is exposed under.
	Alias string

	// Source is the collection that declares the forward relationship.
	Source string

	// Relationship is the underlying forward declaration.
	Relationship Relationship
}
