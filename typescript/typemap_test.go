package typescript

import (
	"errors"
	"testing"

	"github.com/WorldBrain/storex-typescript-generation/schema"
)

func TestResolveFieldType_Defaults(t *testing.T) {
	tests := []struct {
		kind schema.FieldKind
		want string
	}{
		{schema.KindString, "string"},
		{schema.KindText, "string"},
		{schema.KindJSON, "any"},
		{schema.KindDatetime, "Date"},
		{schema.KindTimestamp, "number"},
		{schema.KindBoolean, "boolean"},
		{schema.KindFloat, "number"},
		{schema.KindInt, "number"},
	}

	emitter := NewEmitter(GeneratorConfig{PkStrategy: PkStrategyInt})
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := emitter.resolveFieldType("test", "field", tt.kind)
			if err != nil {
				t.Fatalf("resolveFieldType() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveFieldType(%q) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestResolveFieldType_AutoPkFollowsStrategy(t *testing.T) {
	tests := []struct {
		strategy PkStrategy
		want     string
	}{
		{PkStrategyString, "string"},
		{PkStrategyInt, "number"},
		{PkStrategyGeneric, "string | number"},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			emitter := NewEmitter(GeneratorConfig{
				PkStrategy: tt.strategy,
				// A mapping for auto-pk must never win over the strategy.
				TypeMappings: map[schema.FieldKind]string{schema.KindAutoPk: "bigint"},
			})
			got, err := emitter.resolveFieldType("test", "id", schema.KindAutoPk)
			if err != nil {
				t.Fatalf("resolveFieldType() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveFieldType(auto-pk) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveFieldType_OverridePrecedence(t *testing.T) {
	emitter := NewEmitter(GeneratorConfig{
		PkStrategy: PkStrategyInt,
		TypeMappings: map[schema.FieldKind]string{
			schema.KindDatetime:       "number",
			schema.FieldKind("media"): "Blob",
		},
	})

	got, err := emitter.resolveFieldType("test", "when", schema.KindDatetime)
	if err != nil {
		t.Fatalf("resolveFieldType() error = %v", err)
	}
	if got != "number" {
		t.Errorf("override not applied: got %q, want number", got)
	}

	got, err = emitter.resolveFieldType("test", "payload", schema.FieldKind("media"))
	if err != nil {
		t.Fatalf("resolveFieldType() error = %v", err)
	}
	if got != "Blob" {
		t.Errorf("custom kind not resolved: got %q, want Blob", got)
	}
}

func TestResolveFieldType_UnknownKind(t *testing.T) {
	emitter := NewEmitter(GeneratorConfig{PkStrategy: PkStrategyInt})

	_, err := emitter.resolveFieldType("pages", "content", schema.FieldKind("blob"))
	var typeErr *UnresolvedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error = %v, want *UnresolvedTypeError", err)
	}
	if typeErr.Collection != "pages" || typeErr.Field != "content" || typeErr.FieldKind != "blob" {
		t.Errorf("error = %+v, want pages.content (blob)", typeErr)
	}
}
