package activity

import (
	"strings"
	"time"
)

// EntryEventInput describes the common fields for store mutation events.
type EntryEventInput struct {
	Path       string
	Key        string
	Keys       []string
	OldValue   any
	NewValue   any
	Source     string
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildEntrySetEvent constructs a normalized event for a write at a path.
func BuildEntrySetEvent(input EntryEventInput) Event {
	return buildEntryEvent("env.set", input)
}

// BuildEntryDeletedEvent constructs a normalized event for a deletion at a path.
func BuildEntryDeletedEvent(input EntryEventInput) Event {
	return buildEntryEvent("env.deleted", input)
}

func buildEntryEvent(verb string, input EntryEventInput) Event {
	metadata := cloneMap(input.Metadata)
	if input.Path != "" {
		metadata = ensureMetadata(metadata)
		metadata["path"] = input.Path
	}
	if len(input.Keys) > 0 {
		metadata = ensureMetadata(metadata)
		metadata["replaced_keys"] = append([]string{}, input.Keys...)
	}
	if input.OldValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["old_value"] = input.OldValue
	}
	if input.NewValue != nil {
		metadata = ensureMetadata(metadata)
		metadata["new_value"] = input.NewValue
	}

	keys := input.Keys
	if len(keys) > 0 {
		keys = append([]string{}, input.Keys...)
	}

	key := strings.TrimSpace(input.Key)
	if key == "" && len(keys) > 0 {
		key = keys[0]
	}

	return Event{
		Verb:       verb,
		Source:     strings.TrimSpace(input.Source),
		Path:       strings.TrimSpace(input.Path),
		Key:        key,
		Keys:       keys,
		OldValue:   input.OldValue,
		NewValue:   input.NewValue,
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
