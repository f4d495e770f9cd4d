package envmap

import (
	"sort"
	"strings"
)

// assemble rebuilds the nested tree for the matched keys. Keys fold into the
// tree in ascending length order (stable, so equal lengths keep enumeration
// order): when one key's decoded path is a strict ancestor of another's, the
// deeper key lands last and wins, turning a conflicting scalar into a
// container.
func (s *Store) assemble(matched []string, cfg callConfig) map[string]any {
	keys := make([]string, len(matched))
	copy(keys, matched)
	stableSortByLength(keys)

	tree := map[string]any{}
	for _, key := range keys {
		raw, ok := s.table.Lookup(key)
		if !ok {
			continue
		}
		path := PathForm(key)
		if !cfg.caseSensitive {
			path = strings.ToLower(path)
		}
		assign(tree, splitPath(path), decodeValue(raw, cfg))
	}
	return tree
}

// assign writes value at the given segments, creating intermediate containers
// as needed and replacing any scalar standing where a container must go.
func assign(tree map[string]any, segments []string, value any) {
	if len(segments) == 0 {
		return
	}
	node := tree
	for _, segment := range segments[:len(segments)-1] {
		child, ok := node[segment].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[segment] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

func stableSortByLength(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) < len(keys[j])
	})
}

// extract walks the tree down the given segments. No segments addresses the
// tree root itself.
func extract(tree map[string]any, segments []string) (any, bool) {
	var node any = tree
	for _, segment := range segments {
		container, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = container[segment]
		if !ok {
			return nil, false
		}
	}
	return node, true
}
