package typescript

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/WorldBrain/storex-typescript-generation/schema"
)

// Emitter handles TypeScript declaration emission for collection definitions.
// One emitter serves one generation batch: the import tracker it owns
// accumulates foreign collection references across all collections emitted
// through it.
type Emitter struct {
	config  GeneratorConfig
	indent  string
	skip    map[schema.FieldKind]bool
	imports *importTracker
}

// NewEmitter creates an emitter with a fresh import tracker.
func NewEmitter(config GeneratorConfig) *Emitter {
	skip := make(map[schema.FieldKind]bool, len(config.SkipKinds))
	for _, kind := range config.SkipKinds {
		skip[kind] = true
	}
	return &Emitter{
		config:  config,
		indent:  config.indentUnit(),
		skip:    skip,
		imports: newImportTracker(),
	}
}

// EmitCollection emits one complete type declaration for a collection.
// The declaration is an intersection of segments: the primary-key segment,
// the field block, the forward relationship block, and one independently
// gated segment per reverse relationship.
func (e *Emitter) EmitCollection(buf *bytes.Buffer, name string, def *schema.CollectionDefinition) ([]schema.Warning, error) {
	if def.PkIndex == "" {
		return nil, &MissingPrimaryKeyError{Collection: name}
	}

	var warnings []schema.Warning
	var segments []string

	// Primary-key segment
	pkType, err := e.primaryKeyType(name, def)
	if err != nil {
		return nil, err
	}
	pkShape := fmt.Sprintf("{ %s: %s }", propertyName(def.PkIndex), pkType)
	if e.config.AlwaysIncludePk {
		segments = append(segments, e.indent+pkShape)
	} else {
		segments = append(segments, fmt.Sprintf("%s(WithPk extends true ? %s : {})", e.indent, pkShape))
	}

	// Field block
	var fieldLines []string
	for _, field := range def.Fields {
		line, ok, err := e.emitField(name, field, def.PkIndex)
		if err != nil {
			return nil, err
		}
		if ok {
			fieldLines = append(fieldLines, line)
		}
	}
	if len(fieldLines) > 0 {
		segments = append(segments, e.braceGroup(fieldLines))
	}

	// Forward relationship block
	var relLines []string
	var forwardAliases []string
	for _, rel := range def.Relationships {
		switch r := rel.(type) {
		case *schema.ChildOfRelationship:
			relLines = append(relLines, e.emitChildOf(r))
			forwardAliases = append(forwardAliases, r.Alias)
		case *schema.ConnectsRelationship:
			warnings = append(warnings, connectsWarning(name, r.Alias))
		default:
			return nil, &UnsupportedRelationshipError{Collection: name, Kind: rel.Kind().String()}
		}
	}
	if len(relLines) > 0 {
		segments = append(segments, e.braceGroup(relLines))
	}

	// Reverse relationship segments, each gated on its own alias
	var reverseAliases []string
	for _, reverse := range def.ReverseRelationships {
		switch r := reverse.Relationship.(type) {
		case *schema.ChildOfRelationship:
			segments = append(segments, e.emitReverseChildOf(reverse, r))
			reverseAliases = append(reverseAliases, reverse.Alias)
		case *schema.ConnectsRelationship:
			warnings = append(warnings, connectsWarning(name, reverse.Alias))
		default:
			return nil, &UnsupportedRelationshipError{Collection: name, Kind: reverse.Relationship.Kind().String()}
		}
	}

	buf.WriteString("export type ")
	buf.WriteString(TypeName(name))
	buf.WriteString(e.typeParameters(forwardAliases, reverseAliases))
	buf.WriteString(" =\n")
	buf.WriteString(strings.Join(segments, " &\n"))
	buf.WriteString(";")

	return warnings, nil
}

// primaryKeyType resolves the type of the primary-key segment. A primary-key
// index naming no declared field is an auto-generated key and resolves via
// the strategy.
func (e *Emitter) primaryKeyType(collection string, def *schema.CollectionDefinition) (string, error) {
	field := def.Field(def.PkIndex)
	if field == nil {
		return e.config.PkStrategy.TypeExpr(), nil
	}
	return e.resolveFieldType(collection, field.Name, field.Kind)
}

// emitField converts one field definition into a declaration line.
// The second return value is false when the field is omitted: foreign keys
// are represented exclusively via relationship entries, the primary key is
// emitted as its own segment, and skip-listed kinds are never emitted.
func (e *Emitter) emitField(collection string, field schema.FieldDefinition, pkIndex string) (string, bool, error) {
	if field.Kind == schema.KindForeignKey {
		return "", false, nil
	}
	if field.Name == pkIndex {
		return "", false, nil
	}
	if e.skip[field.Kind] {
		return "", false, nil
	}

	fieldType, err := e.resolveFieldType(collection, field.Name, field.Kind)
	if err != nil {
		return "", false, err
	}

	name := propertyName(field.Name)
	if field.Optional {
		name += "?"
	}
	return name + ": " + fieldType + ";", true, nil
}

// emitChildOf emits the forward field for a child-of relationship. The type
// is conditional on the Relationships parameter: when the alias is selected
// the target collection's generated type, otherwise the raw foreign-key
// scalar.
func (e *Emitter) emitChildOf(rel *schema.ChildOfRelationship) string {
	e.imports.record(rel.TargetCollection)
	return fmt.Sprintf("%s: Relationships extends '%s' ? %s : %s;",
		propertyName(rel.Alias), rel.Alias, TypeName(rel.TargetCollection), e.config.PkStrategy.TypeExpr())
}

// emitReverseChildOf emits the gated segment for one reverse child-of
// relationship: a single nullable object for one-to-one relationships, a
// list otherwise.
func (e *Emitter) emitReverseChildOf(reverse schema.ReverseRelationship, rel *schema.ChildOfRelationship) string {
	e.imports.record(reverse.Source)
	sourceType := TypeName(reverse.Source)
	if rel.Single {
		sourceType += " | null"
	} else {
		sourceType += "[]"
	}
	return fmt.Sprintf("%s(ReverseRelationships extends '%s' ? { %s: %s } : {})",
		e.indent, reverse.Alias, propertyName(reverse.Alias), sourceType)
}

// braceGroup renders declaration lines as an indented object type segment.
func (e *Emitter) braceGroup(lines []string) string {
	var b strings.Builder
	b.WriteString(e.indent)
	b.WriteString("{\n")
	for _, line := range lines {
		b.WriteString(e.indent)
		b.WriteString(e.indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(e.indent)
	b.WriteString("}")
	return b.String()
}

// typeParameters renders the generic-parameter clause. The WithPk switch is
// always offered unless the primary key is unconditionally included; the
// expansion switches appear only when the collection has relationships in
// the matching direction, and default to the non-expanded shape.
func (e *Emitter) typeParameters(forwardAliases, reverseAliases []string) string {
	var params []string
	if !e.config.AlwaysIncludePk {
		params = append(params, "WithPk extends boolean = true")
	}
	if len(forwardAliases) > 0 {
		params = append(params, "Relationships extends "+aliasUnion(forwardAliases)+" = null")
	}
	if len(reverseAliases) > 0 {
		params = append(params, "ReverseRelationships extends "+aliasUnion(reverseAliases)+" = null")
	}
	if len(params) == 0 {
		return ""
	}
	return "<" + strings.Join(params, ", ") + ">"
}

// aliasUnion renders a union of quoted aliases plus the null sentinel.
func aliasUnion(aliases []string) string {
	parts := make([]string, 0, len(aliases)+1)
	for _, alias := range aliases {
		parts = append(parts, "'"+alias+"'")
	}
	parts = append(parts, "null")
	return strings.Join(parts, " | ")
}

// propertyName returns the property name for a field, quoted when it is not
// a plain identifier. Names are never rewritten: the declaration must keep
// the stored object's shape, so reserved words are quoted rather than
// escaped.
func propertyName(name string) string {
	if needsQuoting(name) {
		return fmt.Sprintf("%q", name)
	}
	return name
}

func connectsWarning(collection, alias string) schema.Warning {
	return schema.Warning{
		Code:       "unsupported_connects",
		Message:    fmt.Sprintf("connects relationship %q is not supported and was omitted", alias),
		Collection: collection,
	}
}
