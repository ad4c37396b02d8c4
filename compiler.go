package fieldschema

import (
	"sort"
	"strconv"
	"sync"

	"github.com/reoring/fieldschema/jsonschema"
)

// Option configures a Compiler at construction.
type Option func(*Compiler)

// WithValidator attaches an opaque validator delegate. The compiler never
// inspects or calls it; Validator returns it unmodified.
func WithValidator(v any) Option {
	return func(c *Compiler) { c.validator = v }
}

// Compiler resolves field paths against one schema document, memoizing every
// resolution and compiling a FieldEntry for each path prefix it walks. The
// document is read-only after construction; the cache and all derived entries
// belong to the compiler and are discarded with it.
//
// Resolution lazily populates the cache, so the read path has a write effect.
// A mutex keeps first-time resolution of the same path safe across
// goroutines; resolved nodes and entries are immutable once published.
type Compiler struct {
	mu        sync.Mutex
	doc       map[string]any // original document; $refs resolve against this
	root      map[string]any // working root, derived once by normalizeRoot
	cache     fieldCache
	resolved  map[string]map[string]any
	subfields map[string][]string
	types     map[string]FieldType
	validator any
}

// New builds a Compiler over doc. The working root is derived immediately;
// a document whose top level is a broken $ref fails here.
func New(doc map[string]any, opts ...Option) (*Compiler, error) {
	root, err := normalizeRoot(doc)
	if err != nil {
		return nil, err
	}
	c := &Compiler{
		doc:       doc,
		root:      root,
		cache:     fieldCache{},
		resolved:  map[string]map[string]any{},
		subfields: map[string][]string{},
		types:     map[string]FieldType{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Validator returns the delegate passed via WithValidator, untouched.
func (c *Compiler) Validator() any { return c.validator }

// Resolve resolves a literal path (either syntax accepted by ParsePath) to
// its schema node. Calling it twice with an equivalent path returns the
// identical node value.
func (c *Compiler) Resolve(path string) (map[string]any, error) {
	return c.ResolveSegments(ParsePath(path))
}

// ResolveSegments is Resolve over an already-parsed segment sequence.
func (c *Compiler) ResolveSegments(p Path) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolve(p)
}

func (c *Compiler) resolve(p Path) (map[string]any, error) {
	key := p.Key()
	if node, ok := c.resolved[key]; ok {
		return node, nil
	}
	def := c.root
	for i, seg := range p {
		prevKey := p[:i].Key()
		curKey := p[:i+1].Key()
		isReq := c.segmentRequired(def, prevKey, seg)
		next, err := c.descend(def, seg, curKey)
		if err != nil {
			return nil, err
		}
		next, err = derefNode(c.doc, next, curKey)
		if err != nil {
			return nil, err
		}
		if err := c.compileEntry(curKey, next, isReq); err != nil {
			return nil, err
		}
		def = next
	}
	c.resolved[key] = def
	return def, nil
}

// segmentRequired reports whether seg appears in def's required list, falling
// back to the cached entry of the parent prefix. The fallback is what carries
// combinator-merged required sets onto children.
func (c *Compiler) segmentRequired(def map[string]any, prevKey, seg string) bool {
	req := stringList(def["required"])
	if req == nil {
		if e, ok := c.cache[prevKey]; ok {
			req = e.Required
		}
	}
	for _, name := range req {
		if name == seg {
			return true
		}
	}
	return false
}

// descend selects the child definition for one segment. Index and wildcard
// segments demand an array; name segments descend object properties, or scan
// combinator branches in allOf, anyOf, oneOf order when the definition has no
// direct object shape.
func (c *Compiler) descend(def map[string]any, seg, atPath string) (map[string]any, error) {
	if seg == Wildcard || isIndexSegment(seg) {
		if kindOf(def) != kindArray {
			return nil, Issue{
				Path:    atPath,
				Code:    CodeNotAnArray,
				Message: "index segment on a non-array definition",
				Params:  map[string]any{"segment": seg},
			}
		}
		switch items := def["items"].(type) {
		case []any:
			// tuple schema; the wildcard falls back to the first item as
			// the template definition
			idx := 0
			if seg != Wildcard {
				idx, _ = strconv.Atoi(seg)
			}
			if idx >= len(items) {
				return nil, Issue{
					Path:    atPath,
					Code:    CodeFieldNotFound,
					Message: "no tuple item schema at index",
					Params:  map[string]any{"index": idx},
				}
			}
			m, ok := items[idx].(map[string]any)
			if !ok {
				return nil, Issue{Path: atPath, Code: CodeFieldNotFound, Message: "tuple item is not a schema object"}
			}
			return m, nil
		case map[string]any:
			return items, nil
		default:
			return nil, Issue{Path: atPath, Code: CodeFieldNotFound, Message: "array definition has no items schema"}
		}
	}
	if kindOf(def) == kindObject {
		props, ok := def["properties"].(map[string]any)
		if !ok {
			return nil, Issue{Path: atPath, Code: CodeNoProperties, Message: "object definition has no properties"}
		}
		raw, ok := props[seg]
		if !ok {
			return nil, Issue{
				Path:    atPath,
				Code:    CodeFieldNotFound,
				Message: "no property " + strconv.Quote(seg),
			}
		}
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, Issue{
				Path:    atPath,
				Code:    CodeFieldNotFound,
				Message: "property " + strconv.Quote(seg) + " is not a schema object",
			}
		}
		return m, nil
	}
	for _, kw := range combinatorKeywords {
		list, _ := def[kw].([]any)
		for _, raw := range list {
			member, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			member, err := derefNode(c.doc, member, atPath)
			if err != nil {
				return nil, err
			}
			props, ok := member["properties"].(map[string]any)
			if !ok {
				continue
			}
			if m, ok := props[seg].(map[string]any); ok {
				return m, nil
			}
		}
	}
	return nil, Issue{
		Path:    atPath,
		Code:    CodeFieldNotFound,
		Message: "no definition for " + strconv.Quote(seg),
	}
}

// compileEntry writes the FieldEntry for one visited prefix: combinator
// members ref-resolved, the best-effort flatten of their properties/required,
// the resolved or inferred type, and the required flag. Entries are immutable
// once populated; a revisit is a no-op.
func (c *Compiler) compileEntry(key string, def map[string]any, isRequired bool) error {
	e := c.cache.at(key)
	if e.populated {
		return nil
	}
	var members []map[string]any
	for _, kw := range combinatorKeywords {
		list, ok := def[kw].([]any)
		if !ok {
			continue
		}
		resolved := make([]map[string]any, 0, len(list))
		for _, raw := range list {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			m, err := derefNode(c.doc, m, key)
			if err != nil {
				return err
			}
			resolved = append(resolved, m)
		}
		switch kw {
		case "allOf":
			e.AllOf = resolved
		case "anyOf":
			e.AnyOf = resolved
		case "oneOf":
			e.OneOf = resolved
		}
		members = append(members, resolved...)
	}
	if t, _ := def["type"].(string); t != "" {
		e.Type = t
	}
	if len(members) > 0 {
		// best-effort flatten, not full combination semantics: later members
		// overwrite earlier on collision, required concatenates with
		// duplicates, the first declared type wins when def lacks one
		props := map[string]any{}
		if own, ok := def["properties"].(map[string]any); ok {
			for name, ps := range own {
				props[name] = ps
			}
		}
		req := []string{}
		for _, m := range members {
			if mp, ok := m["properties"].(map[string]any); ok {
				for name, ps := range mp {
					props[name] = ps
				}
			}
			req = append(req, stringList(m["required"])...)
		}
		e.Properties = props
		e.Required = req
		if e.Type == "" {
			for _, m := range members {
				if t, _ := m["type"].(string); t != "" {
					e.Type = t
					break
				}
			}
		}
	} else if props, ok := def["properties"].(map[string]any); ok {
		e.Properties = props
	}
	e.IsRequired = isRequired
	e.populated = true
	return nil
}

// Entry returns the compiled entry for a path that has already been walked
// (by resolving it or any longer path through it).
func (c *Compiler) Entry(path string) (*FieldEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.cache[ParsePath(path).Key()]
	if !ok || !e.populated {
		return nil, false
	}
	return e, true
}

// Subfields lists the property names of the field at path, sorted. Merged
// combinator properties take precedence over the node's own map. The result
// is memoized; equal paths return the identical slice.
func (c *Compiler) Subfields(path string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := ParsePath(path)
	key := p.Key()
	if names, ok := c.subfields[key]; ok {
		return names, nil
	}
	def, err := c.resolve(p)
	if err != nil {
		return nil, err
	}
	props, _ := def["properties"].(map[string]any)
	if e, ok := c.cache[key]; ok && e.Properties != nil {
		props = e.Properties
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	c.subfields[key] = names
	return names, nil
}

// TypeOf maps the resolved (or combinator-inferred) type of the field at
// path onto FieldType. The literal "null" type has no downstream
// representation and raises CodeUnrepresentableType.
func (c *Compiler) TypeOf(path string) (FieldType, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := ParsePath(path)
	key := p.Key()
	if t, ok := c.types[key]; ok {
		return t, nil
	}
	def, err := c.resolve(p)
	if err != nil {
		return TypeUnknown, err
	}
	t, _ := def["type"].(string)
	if t == "" {
		if e, ok := c.cache[key]; ok {
			t = e.Type
		}
	}
	if t == "null" {
		return TypeUnknown, Issue{
			Path:    key,
			Code:    CodeUnrepresentableType,
			Message: `the "null" type cannot be mapped to a field type`,
		}
	}
	ft, _ := fieldTypeOf(t)
	c.types[key] = ft
	return ft, nil
}

// Describe returns the typed read-only view of the node at path.
func (c *Compiler) Describe(path string) (*jsonschema.Schema, error) {
	node, err := c.Resolve(path)
	if err != nil {
		return nil, err
	}
	return jsonschema.FromNode(node), nil
}

// stringList coerces a decoded JSON/YAML list into []string, dropping
// non-string elements. A missing or non-list value yields nil.
func stringList(v any) []string {
	switch list := v.(type) {
	case []any:
		out := make([]string, 0, len(list))
		for _, it := range list {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return list
	}
	return nil
}
