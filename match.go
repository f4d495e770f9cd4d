package envmap

import "strings"

// matchedKeys enumerates table keys whose encoded form starts with the
// encoded query path, in the table's native enumeration order. The empty
// path encodes to the empty prefix and matches every key.
//
// The test is a raw string prefix, not segment-boundary aware: reading
// "foo" matches FOOD as well as FOO and FOO_BAR.
func (s *Store) matchedKeys(path string, cfg callConfig) []string {
	prefix := KeyForm(path)
	if !cfg.caseSensitive {
		prefix = strings.ToUpper(prefix)
	}

	var matched []string
	for _, key := range s.table.Keys() {
		candidate := key
		if !cfg.caseSensitive {
			candidate = strings.ToUpper(candidate)
		}
		if strings.HasPrefix(candidate, prefix) {
			matched = append(matched, key)
		}
	}
	return matched
}
