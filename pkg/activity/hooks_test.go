package activity

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHooksNotifyFansOut(t *testing.T) {
	first := &CaptureHook{}
	second := &CaptureHook{}
	hooks := Hooks{first, second}

	event := Event{Verb: "env.set", Key: "APP_DEBUG"}
	if err := hooks.Notify(context.Background(), event); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(first.Events) != 1 || len(second.Events) != 1 {
		t.Fatalf("events = %d, %d", len(first.Events), len(second.Events))
	}
}

func TestHooksNotifyJoinsErrors(t *testing.T) {
	failure := errors.New("sink offline")
	failing := &CaptureHook{Err: failure}
	healthy := &CaptureHook{}
	hooks := Hooks{failing, healthy}

	err := hooks.Notify(context.Background(), Event{Verb: "env.set", Key: "K"})
	if !errors.Is(err, failure) {
		t.Fatalf("expected joined error to contain sink failure, got %v", err)
	}
	if len(healthy.Events) != 1 {
		t.Fatalf("healthy hook should still be notified")
	}
}

func TestHooksNotifySkipsIncompleteEvents(t *testing.T) {
	capture := &CaptureHook{}
	hooks := Hooks{capture}

	if err := hooks.Notify(context.Background(), Event{Verb: "env.set"}); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if err := hooks.Notify(context.Background(), Event{Key: "APP_DEBUG"}); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("incomplete events should be dropped, got %+v", capture.Events)
	}
}

func TestHooksEnabled(t *testing.T) {
	if (Hooks{}).Enabled() {
		t.Fatalf("empty hooks should be disabled")
	}
	if !(Hooks{&CaptureHook{}}).Enabled() {
		t.Fatalf("non-empty hooks should be enabled")
	}
}

func TestNormalizeEventFillsDefaults(t *testing.T) {
	normalized := NormalizeEvent(Event{
		Verb: "  env.set ",
		Key:  " APP_DEBUG ",
	})
	if normalized.Verb != "env.set" || normalized.Key != "APP_DEBUG" {
		t.Fatalf("trimming failed: %+v", normalized)
	}
	if normalized.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if normalized.OccurredAt.IsZero() {
		t.Fatalf("expected generated timestamp")
	}
}

func TestNormalizeEventKeepsProvidedFields(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	normalized := NormalizeEvent(Event{
		ID:         "evt-1",
		Verb:       "env.deleted",
		Key:        "APP_DEBUG",
		OccurredAt: at,
	})
	if normalized.ID != "evt-1" {
		t.Fatalf("ID = %q", normalized.ID)
	}
	if !normalized.OccurredAt.Equal(at) {
		t.Fatalf("OccurredAt = %v", normalized.OccurredAt)
	}
}

func TestNormalizeEventClonesMetadata(t *testing.T) {
	metadata := map[string]any{"path": "app.debug"}
	normalized := NormalizeEvent(Event{Verb: "env.set", Key: "K", Metadata: metadata})

	metadata["path"] = "mutated"
	if normalized.Metadata["path"] != "app.debug" {
		t.Fatalf("metadata not cloned: %+v", normalized.Metadata)
	}
}
