package envmap

import "strings"

const (
	pathSep = '.'
	keySep  = '_'
)

// KeyForm converts a dotted path into the flat key form understood by the
// table. Literal underscores in the path come out escaped as `\_`, dots
// become underscores, and `\.` unescapes to a literal dot. Any input string
// is valid.
func KeyForm(path string) string {
	return transpose(path, pathSep, keySep)
}

// PathForm is the mirror transform: underscores become dots, literal dots
// come out escaped as `\.`, and `\_` unescapes to a literal underscore.
// Encoding then decoding recovers the original path exactly (ignoring case),
// and decoding then re-encoding recovers the original key exactly.
func PathForm(key string) string {
	return transpose(key, keySep, pathSep)
}

// transpose rewrites s in a single left-to-right scan, swapping the `from`
// delimiter for `to`. A `to` already present in s is escaped so it survives
// the mirror transform; an escaped `from` is unescaped to a literal.
func transpose(s string, from, to byte) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == from:
			b.WriteByte(from)
			i++
		case c == to:
			b.WriteByte('\\')
			b.WriteByte(to)
		case c == from:
			b.WriteByte(to)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// splitPath breaks a dotted path into segments on unescaped dots, collapsing
// `\.` into a literal dot inside the segment. The empty path is the root and
// yields no segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	var segments []string
	var b strings.Builder
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '\\' && i+1 < len(path) && path[i+1] == pathSep:
			b.WriteByte(pathSep)
			i++
		case c == pathSep:
			segments = append(segments, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	return append(segments, b.String())
}
