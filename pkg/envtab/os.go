package envtab

import (
	"os"
	"strings"
)

// OSTable binds Table to the process environment. It keeps no state of its
// own; every call goes straight to the host primitives.
type OSTable struct{}

// OS returns a Table backed by the process environment.
func OS() OSTable {
	return OSTable{}
}

// Keys enumerates the current environment in the order the host reports it.
func (OSTable) Keys() []string {
	environ := os.Environ()
	keys := make([]string, 0, len(environ))
	for _, entry := range environ {
		name, _, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

// Lookup reports the value stored under key.
func (OSTable) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set stores value under key.
func (OSTable) Set(key, value string) error {
	return os.Setenv(key, value)
}

// Delete removes key. Removing an absent key is a no-op.
func (OSTable) Delete(key string) error {
	return os.Unsetenv(key)
}
