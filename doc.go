package fieldschema

// Package fieldschema resolves dotted/bracketed or pointer field paths
// against a JSON Schema document and compiles, per visited path prefix, a
// cached field definition (merged properties, required flag, ref-resolved
// combinator members) for downstream consumers such as form-prop derivation
// and type mapping.
//
// Design policy:
// - Keep only public APIs in the root package; the typed node view lives
//   under jsonschema/, the CLI under cmd/fieldschema.
// - Schema nodes stay raw (map[string]any) and read-only; $ref is resolved
//   eagerly at walk time into a fresh merged node, never aliased.
// - The compiled-field cache belongs to one Compiler, grows monotonically,
//   and is discarded with it.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	c, err := fieldschema.NewFromJSON(data)
//	node, err := c.Resolve(".items[0].price")
//	entry, ok := c.Entry("/items/0/price")
//	ft, err := c.TypeOf("/items/0/price")
