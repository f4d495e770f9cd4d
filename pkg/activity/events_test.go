package activity

import (
	"context"
	"reflect"
	"testing"
)

func TestBuildEntrySetEvent(t *testing.T) {
	event := BuildEntrySetEvent(EntryEventInput{
		Path:     "app.debug",
		Key:      "APP_DEBUG",
		Keys:     []string{"APP_DEBUG", "APP_DEBUG_LEVEL"},
		OldValue: "false",
		NewValue: "true",
	})

	if event.Verb != "env.set" {
		t.Fatalf("verb = %q", event.Verb)
	}
	if event.Key != "APP_DEBUG" {
		t.Fatalf("key = %q", event.Key)
	}
	if event.Metadata["path"] != "app.debug" {
		t.Fatalf("metadata path = %v", event.Metadata["path"])
	}
	if event.Metadata["old_value"] != "false" || event.Metadata["new_value"] != "true" {
		t.Fatalf("metadata values = %+v", event.Metadata)
	}
	replaced, _ := event.Metadata["replaced_keys"].([]string)
	if !reflect.DeepEqual(replaced, []string{"APP_DEBUG", "APP_DEBUG_LEVEL"}) {
		t.Fatalf("replaced_keys = %v", replaced)
	}
}

func TestBuildEntryDeletedEventFallsBackToFirstKey(t *testing.T) {
	event := BuildEntryDeletedEvent(EntryEventInput{
		Path: "app",
		Keys: []string{"APP_DEBUG", "APP_NAME"},
	})

	if event.Verb != "env.deleted" {
		t.Fatalf("verb = %q", event.Verb)
	}
	if event.Key != "APP_DEBUG" {
		t.Fatalf("key = %q", event.Key)
	}
	if !reflect.DeepEqual(event.Keys, []string{"APP_DEBUG", "APP_NAME"}) {
		t.Fatalf("keys = %v", event.Keys)
	}
}

func TestEmitterAppliesDefaultSource(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: true})

	event := BuildEntrySetEvent(EntryEventInput{Path: "app.debug", Key: "APP_DEBUG"})
	if err := emitter.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(capture.Events) != 1 {
		t.Fatalf("events = %d", len(capture.Events))
	}
	if capture.Events[0].Source != "envmap" {
		t.Fatalf("source = %q", capture.Events[0].Source)
	}
}

func TestEmitterDisabled(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: false})

	event := BuildEntrySetEvent(EntryEventInput{Path: "app.debug", Key: "APP_DEBUG"})
	if err := emitter.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("disabled emitter should not notify, got %d events", len(capture.Events))
	}
}
