package fieldschema

// FieldEntry is the compiled record cached per canonical path key. Entries
// are written once while a path prefix is first walked and are immutable
// afterwards; downstream consumers read them instead of recomputing merges.
type FieldEntry struct {
	// Type is the resolved type, or the type inferred from the first
	// combinator member declaring one when the node itself lacks it.
	Type string
	// Properties is the node's property map, or the shallow merge across all
	// combinator members when the node is a combinator (later members win on
	// name collision). Nil when the node declares neither.
	Properties map[string]any
	// Required is the concatenation of the combinator members' required
	// lists. Duplicates are preserved. Nil unless a combinator merge ran.
	Required []string
	// AllOf/AnyOf/OneOf hold the combinator members with every $ref member
	// replaced by its target.
	AllOf []map[string]any
	AnyOf []map[string]any
	OneOf []map[string]any
	// IsRequired reports whether this path's final segment appears in its
	// parent's required set (direct or cache-propagated from a merge).
	IsRequired bool

	populated bool
}

// fieldCache maps canonical path keys to their compiled entries. One cache
// belongs to exactly one Compiler and grows monotonically with it: the
// underlying document never changes, so entries are never evicted.
type fieldCache map[string]*FieldEntry

// at returns the entry for key, creating an empty one on first access.
func (c fieldCache) at(key string) *FieldEntry {
	e, ok := c[key]
	if !ok {
		e = &FieldEntry{}
		c[key] = e
	}
	return e
}
