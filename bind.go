package envmap

import (
	"fmt"

	"github.com/goliatone/go-envmap/internal/hydrate"
)

// Bind materializes the subtree at path and decodes it into T through a JSON
// round trip. The subtree must be a container; binding a scalar or a missing
// path returns an error. Parse is forced on so numeric and boolean leaves
// decode into typed fields.
func Bind[T any](s *Store, path string, opts ...Option) (T, error) {
	var zero T
	value := s.Get(path, append(opts, WithParse(true))...)
	if value == nil {
		return zero, fmt.Errorf("envmap: bind %q: no data at path", path)
	}
	payload, ok := value.(map[string]any)
	if !ok {
		return zero, fmt.Errorf("envmap: bind %q: value is %T, not a container", path, value)
	}
	return hydrate.NewDecoder[T]().Decode(hydrate.Context{Path: path}, payload)
}
