package envmap

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Trace captures provenance information for a path lookup: every table key
// the matcher selected, in the order the assembler folds them into the tree.
type Trace struct {
	Path    string       `json:"path"`
	Entries []Provenance `json:"entries"`
}

// Provenance details how a single table key contributes to a traced path.
type Provenance struct {
	Key   string `json:"key"`
	Path  string `json:"path"`
	Value string `json:"value,omitempty"`
	Found bool   `json:"found"`
}

// Trace reports the matched keys for path with their decoded paths and raw
// table values. Later entries override earlier ones during assembly.
func (s *Store) Trace(path string, opts ...Option) Trace {
	cfg := s.callConfig(opts)
	matched := s.matchedKeys(path, cfg)

	keys := make([]string, len(matched))
	copy(keys, matched)
	stableSortByLength(keys)

	entries := make([]Provenance, 0, len(keys))
	for _, key := range keys {
		decoded := PathForm(key)
		if !cfg.caseSensitive {
			decoded = strings.ToLower(decoded)
		}
		value, found := s.table.Lookup(key)
		entries = append(entries, Provenance{
			Key:   key,
			Path:  decoded,
			Value: value,
			Found: found,
		})
	}
	return Trace{Path: path, Entries: entries}
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated via
// ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
