package envtab

// Table is the flat, string-keyed, string-valued store the envmap core reads
// and mutates. Keys returns the current enumeration in the table's native
// order; implementations must keep that order stable between calls when the
// table has not been mutated.
type Table interface {
	Keys() []string
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
