package typescript

import (
	"fmt"
	"strings"
)

// importTracker records which foreign collection names the declarations
// emitted so far reference. It lives for one batch and is owned by the
// emitter; first-referenced names are emitted first.
type importTracker struct {
	order []string
	seen  map[string]bool
}

func newImportTracker() *importTracker {
	return &importTracker{seen: make(map[string]bool)}
}

// record notes a referenced collection name, preserving first-reference order.
func (t *importTracker) record(collection string) {
	if t.seen[collection] {
		return
	}
	t.seen[collection] = true
	t.order = append(t.order, collection)
}

// RenderImports renders one import statement per referenced collection name
// that is not part of the current batch. Names generated in the same batch
// resolve to declarations emitted earlier in the same output and never need
// an import. Without a resolver, nothing is emitted.
func (e *Emitter) RenderImports(batch []string, resolve ImportResolver) string {
	if resolve == nil {
		return ""
	}

	inBatch := make(map[string]bool, len(batch))
	for _, name := range batch {
		inBatch[name] = true
	}

	var b strings.Builder
	for _, name := range e.imports.order {
		if inBatch[name] {
			continue
		}
		path := resolve(name)
		if path == "" {
			continue
		}
		fmt.Fprintf(&b, "import { %s } from '%s';\n", TypeName(name), path)
	}
	return b.String()
}
