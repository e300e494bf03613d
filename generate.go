// Package generation turns storage-layer collection definitions into
// TypeScript type declarations, so generated types stay in sync with the
// schema registry instead of being maintained by hand.
package generation

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/WorldBrain/storex-typescript-generation/schema"
	"github.com/WorldBrain/storex-typescript-generation/typescript"
)

var validate = validator.New()

// Options holds the configuration for one generation batch.
type Options struct {
	// Collections lists the collection names to generate, in output order.
	Collections []string `validate:"required,min=1"`

	// PkStrategy selects the auto-generated primary key representation.
	// Supported values: "string", "int", "generic" (the union of both).
	// Default: "int"
	PkStrategy typescript.PkStrategy `validate:"oneof=string int generic"`

	// TypeMappings overrides the built-in field kind to type mapping.
	// e.g. map[schema.FieldKind]string{"media": "Blob"}
	TypeMappings map[schema.FieldKind]string

	// SkipKinds lists field kinds that are never emitted.
	SkipKinds []schema.FieldKind

	// AlwaysIncludePk emits primary-key segments unconditionally instead
	// of gating them behind the WithPk type parameter.
	AlwaysIncludePk bool

	// ResolveImport maps a referenced collection name outside the batch to
	// the module path its type is imported from. Without a resolver no
	// import statements are emitted.
	ResolveImport typescript.ImportResolver

	// Logger receives generation warnings. Warnings are always returned on
	// the Result as well.
	Logger *slog.Logger
}

// Result contains the generation output.
type Result struct {
	// Output is the full generated source: import statements, then one
	// declaration per requested collection in request order, blank-line
	// separated, with one trailing newline.
	Output string

	// Warnings contains non-fatal issues encountered during generation.
	Warnings []schema.Warning
}

// Generate renders TypeScript declarations for the requested collections.
// All declarations share one emitter, so import decisions account for every
// reference made during the batch; the import context never outlives the
// call.
func Generate(registry *schema.Registry, opts *Options) (*Result, error) {
	opts = applyOptionDefaults(opts)
	if err := validate.Struct(opts); err != nil {
		return nil, invalidOptionsError(err)
	}

	emitter := typescript.NewEmitter(typescript.GeneratorConfig{
		PkStrategy:      opts.PkStrategy,
		TypeMappings:    opts.TypeMappings,
		SkipKinds:       opts.SkipKinds,
		AlwaysIncludePk: opts.AlwaysIncludePk,
	})

	declarations := make([]string, 0, len(opts.Collections))
	var warnings []schema.Warning
	for _, name := range opts.Collections {
		def, err := registry.Collection(name)
		if err != nil {
			return nil, err
		}
		if errs := def.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("invalid definition for collection %q: %w", name, errs[0])
		}

		var buf bytes.Buffer
		collectionWarnings, err := emitter.EmitCollection(&buf, name, def)
		if err != nil {
			return nil, fmt.Errorf("failed to generate collection %q: %w", name, err)
		}
		declarations = append(declarations, buf.String())
		warnings = append(warnings, collectionWarnings...)
	}

	output := strings.Join(declarations, "\n\n") + "\n"
	if imports := emitter.RenderImports(opts.Collections, opts.ResolveImport); imports != "" {
		output = imports + "\n" + output
	}

	if opts.Logger != nil {
		for _, w := range warnings {
			opts.Logger.Warn(w.Message,
				slog.String("code", w.Code),
				slog.String("collection", w.Collection))
		}
	}

	return &Result{Output: output, Warnings: warnings}, nil
}

// applyOptionDefaults applies default values to Options.
func applyOptionDefaults(opts *Options) *Options {
	// Make a copy to avoid mutating the input
	result := *opts

	if result.PkStrategy == "" {
		result.PkStrategy = typescript.PkStrategyInt
	}

	return &result
}
