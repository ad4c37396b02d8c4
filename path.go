package fieldschema

import (
	"strconv"
	"strings"
)

// Wildcard is the sentinel segment standing for "any array item". Callers use
// it when they want the template item definition instead of a concrete index.
const Wildcard = "$"

// Path is an ordered sequence of field-path segments. Each segment is a
// property name, a decimal array index, or Wildcard.
type Path []string

// ParsePath converts a literal path into its segment sequence. Two literal
// syntaxes are recognized, distinguished by the leading character:
//
//   - "/a/b/0"    pointer form, with ~0/~1 escapes per RFC 6901
//   - ".a.b[0]"   dot/bracket form (leading dot optional); brackets accept a
//     bare index ([0]) or a quoted name (['na\'me']) with \' and \\ escapes
//
// Parsing is lenient: empty segments are dropped and an unterminated bracket
// consumes the remainder of the literal.
func ParsePath(raw string) Path {
	if raw == "" {
		return nil
	}
	if raw[0] == '/' {
		return parsePointer(raw)
	}
	return parseDotBracket(raw)
}

func parsePointer(raw string) Path {
	var p Path
	for _, tok := range strings.Split(raw, "/") {
		if tok == "" {
			continue
		}
		p = append(p, decodePointerToken(tok))
	}
	return p
}

// decodePointerToken reverses RFC 6901 escaping: '~1' -> '/', then '~0' -> '~'.
func decodePointerToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}

func parseDotBracket(raw string) Path {
	var p Path
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			p = append(p, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '.':
			flush()
		case '[':
			flush()
			seg, next := scanBracket(raw, i+1)
			if seg != "" {
				p = append(p, seg)
			}
			i = next
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return p
}

// scanBracket reads a bracketed segment starting just after '['. It returns
// the segment and the index of the closing bracket (or the last byte when the
// bracket never closes).
func scanBracket(raw string, i int) (string, int) {
	var b strings.Builder
	if i < len(raw) && raw[i] == '\'' {
		for i++; i < len(raw); i++ {
			c := raw[i]
			if c == '\\' && i+1 < len(raw) {
				i++
				b.WriteByte(raw[i])
				continue
			}
			if c == '\'' {
				break
			}
			b.WriteByte(c)
		}
		for i < len(raw) && raw[i] != ']' {
			i++
		}
		return b.String(), i
	}
	for ; i < len(raw); i++ {
		if raw[i] == ']' {
			return b.String(), i
		}
		b.WriteByte(raw[i])
	}
	return b.String(), i - 1
}

// Key renders the canonical cache key: a JSON Pointer over the segments with
// '~' and '/' escaped per RFC 6901. The empty path renders as "/". Both literal
// syntaxes normalize to the same key, so equivalent paths share cache entries.
func (p Path) Key() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(seg, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// Field appends a property-name segment.
func (p Path) Field(name string) Path {
	return append(append(Path{}, p...), name)
}

// Index appends a concrete array-index segment.
func (p Path) Index(i int) Path {
	return append(append(Path{}, p...), strconv.Itoa(i))
}

// Item appends the wildcard array segment.
func (p Path) Item() Path {
	return append(append(Path{}, p...), Wildcard)
}

// isIndexSegment reports whether seg is a valid non-negative decimal index.
func isIndexSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}
