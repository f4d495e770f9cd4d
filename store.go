package envmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-envmap/pkg/activity"
)

// Get returns the value stored at path. The nested tree is rebuilt from the
// table on every call; path addresses a subtree of it, and the empty path
// addresses the whole table rendered as nested structure. Missing data
// yields nil.
func (s *Store) Get(path string, opts ...Option) any {
	cfg := s.callConfig(opts)
	start := time.Now()
	value, _, matched := s.read(path, cfg)
	s.logger().LogOperation(LogEvent{
		Op:       "get",
		Path:     path,
		Matched:  matched,
		Duration: time.Since(start),
	})
	return value
}

// GetDefault behaves like Get but substitutes defaultValue when nothing
// exists at path. The default takes the same encode/decode round trip as
// stored data: with parse enabled a numeric default comes back parsed, and
// without it the default comes back as text.
func (s *Store) GetDefault(path string, defaultValue any, opts ...Option) any {
	cfg := s.callConfig(opts)
	start := time.Now()
	value, found, matched := s.read(path, cfg)
	if !found {
		value = decodeValue(encodeValue(defaultValue, cfg), cfg)
	}
	s.logger().LogOperation(LogEvent{
		Op:       "get",
		Path:     path,
		Matched:  matched,
		Duration: time.Since(start),
	})
	return value
}

func (s *Store) read(path string, cfg callConfig) (any, bool, int) {
	matched := s.matchedKeys(path, cfg)
	tree := s.assemble(matched, cfg)
	lookup := path
	if !cfg.caseSensitive {
		lookup = strings.ToLower(lookup)
	}
	value, ok := extract(tree, splitPath(lookup))
	if !ok {
		return nil, false, len(matched)
	}
	// The extracted value takes one more pass through the codec: a leaf whose
	// assembly-time parse produced another JSON document parses again here.
	// Containers and plain text pass through unchanged.
	return decodeValue(value, cfg), true, len(matched)
}

// Set stores value at path, replacing whatever was there: every table key
// matched by path is deleted first, collapsing any nested structure beneath
// the path into the single new leaf.
func (s *Store) Set(path string, value any, opts ...Option) error {
	cfg := s.callConfig(opts)
	start := time.Now()

	var oldValue any
	if s.cfg.hooks.Enabled() {
		oldValue, _, _ = s.read(path, cfg)
	}

	matched := s.matchedKeys(path, cfg)
	var err error
	for _, key := range matched {
		if deleteErr := s.table.Delete(key); deleteErr != nil {
			err = fmt.Errorf("envmap: set %q: delete key %q: %w", path, key, deleteErr)
			break
		}
	}

	key := s.canonicalKey(path, cfg)
	encoded := encodeValue(value, cfg)
	if err == nil {
		if setErr := s.table.Set(key, encoded); setErr != nil {
			err = fmt.Errorf("envmap: set %q: %w", path, setErr)
		}
	}

	s.logger().LogOperation(LogEvent{
		Op:       "set",
		Path:     path,
		Matched:  len(matched),
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		return err
	}

	s.notify(activity.BuildEntrySetEvent(activity.EntryEventInput{
		Path:     path,
		Key:      key,
		Keys:     matched,
		OldValue: oldValue,
		NewValue: encoded,
	}))
	return nil
}

// Delete removes every table key matched by path. Deleting a path with no
// matches is a no-op, so the operation is idempotent.
func (s *Store) Delete(path string, opts ...Option) error {
	cfg := s.callConfig(opts)
	start := time.Now()

	matched := s.matchedKeys(path, cfg)
	var err error
	for _, key := range matched {
		if deleteErr := s.table.Delete(key); deleteErr != nil {
			err = fmt.Errorf("envmap: delete %q: key %q: %w", path, key, deleteErr)
			break
		}
	}

	s.logger().LogOperation(LogEvent{
		Op:       "delete",
		Path:     path,
		Matched:  len(matched),
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		return err
	}

	if len(matched) > 0 {
		s.notify(activity.BuildEntryDeletedEvent(activity.EntryEventInput{
			Path: path,
			Key:  s.canonicalKey(path, cfg),
			Keys: matched,
		}))
	}
	return nil
}

// Has reports whether any table key is matched by path.
func (s *Store) Has(path string, opts ...Option) bool {
	cfg := s.callConfig(opts)
	start := time.Now()
	matched := s.matchedKeys(path, cfg)
	s.logger().LogOperation(LogEvent{
		Op:       "has",
		Path:     path,
		Matched:  len(matched),
		Duration: time.Since(start),
	})
	return len(matched) > 0
}

// canonicalKey encodes path into the key written on Set: uppercase unless
// the call is case sensitive.
func (s *Store) canonicalKey(path string, cfg callConfig) string {
	key := KeyForm(path)
	if !cfg.caseSensitive {
		key = strings.ToUpper(key)
	}
	return key
}

func (s *Store) notify(event activity.Event) {
	hooks := s.cfg.hooks
	if !hooks.Enabled() {
		return
	}
	if err := hooks.Notify(context.Background(), event); err != nil {
		s.logger().LogOperation(LogEvent{Op: "notify", Path: event.Path, Err: err})
	}
}
