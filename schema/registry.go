package schema

import "sort"

// Registry holds the collection definitions available to one generation run.
// It is the handle through which the generator consumes the storage layer's
// schema; the generator itself never mutates registered definitions.
type Registry struct {
	collections map[string]*CollectionDefinition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		collections: make(map[string]*CollectionDefinition),
	}
}

// Register adds a collection definition under the given name.
// Registering the same name twice replaces the earlier definition.
func (r *Registry) Register(name string, def *CollectionDefinition) {
	r.collections[name] = def
}

// Collection looks up a collection definition by name.
func (r *Registry) Collection(name string) (*CollectionDefinition, error) {
	def, ok := r.collections[name]
	if !ok {
		return nil, &UnknownCollectionError{Name: name}
	}
	return def, nil
}

// Collections returns the names of all registered collections, sorted.
func (r *Registry) Collections() []string {
	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeriveReverses computes the reverse-relationship mapping for every
// registered collection from the child-of relationships pointing at it.
// Existing reverse mappings are replaced. Child-of relationships targeting
// unregistered collections are ignored; connects relationships contribute
// no reverse entries.
func (r *Registry) DeriveReverses() {
	for _, def := range r.collections {
		def.ReverseRelationships = nil
	}
	for _, source := range r.Collections() {
		def := r.collections[source]
		for _, rel := range def.Relationships {
			childOf, ok := rel.(*ChildOfRelationship)
			if !ok {
				continue
			}
			target, ok := r.collections[childOf.TargetCollection]
			if !ok {
				continue
			}
			target.ReverseRelationships = append(target.ReverseRelationships, ReverseRelationship{
				Alias:        childOf.ReverseAlias,
				Source:       source,
				Relationship: childOf,
			})
		}
	}
}

// UnknownCollectionError reports a generation request for a collection name
// that is not present in the registry.
type UnknownCollectionError struct {
	Name string
}

func (e *UnknownCollectionError) Error() string {
	return "unknown collection: " + e.Name
}
