package envtab

import "errors"

// Layered presents several tables as a single read-through view. Earlier
// tables are stronger: lookups return the first hit, and enumeration lists
// each key once at the position of the strongest table that holds it.
type Layered struct {
	tables []Table
}

// NewLayered composes tables ordered from strongest to weakest. Nil entries
// are dropped.
func NewLayered(tables ...Table) *Layered {
	filtered := make([]Table, 0, len(tables))
	for _, table := range tables {
		if table == nil {
			continue
		}
		filtered = append(filtered, table)
	}
	return &Layered{tables: filtered}
}

// Keys enumerates the union of all layer keys, strongest layer first,
// deduplicated on first sight.
func (l *Layered) Keys() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, table := range l.tables {
		for _, key := range table.Keys() {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	return out
}

// Lookup returns the value from the strongest layer holding key.
func (l *Layered) Lookup(key string) (string, bool) {
	for _, table := range l.tables {
		if value, ok := table.Lookup(key); ok {
			return value, true
		}
	}
	return "", false
}

// Set writes to the strongest layer so the new value masks every weaker one.
func (l *Layered) Set(key, value string) error {
	if len(l.tables) == 0 {
		return errors.New("envtab: layered table has no layers")
	}
	return l.tables[0].Set(key, value)
}

// Delete removes key from every layer; deleting only from the strongest
// layer would unmask a stale weaker value.
func (l *Layered) Delete(key string) error {
	var errs []error
	for _, table := range l.tables {
		if err := table.Delete(key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
