package envmap

import (
	"reflect"
	"testing"
)

func TestTraceReportsProvenance(t *testing.T) {
	store := newTestStore(map[string]string{
		"APP_SERVER":      "ignored",
		"APP_SERVER_HOST": "localhost",
	})

	trace := store.Trace("app.server")
	want := Trace{
		Path: "app.server",
		Entries: []Provenance{
			{Key: "APP_SERVER", Path: "app.server", Value: "ignored", Found: true},
			{Key: "APP_SERVER_HOST", Path: "app.server.host", Value: "localhost", Found: true},
		},
	}
	if !reflect.DeepEqual(trace, want) {
		t.Fatalf("Trace = %+v, want %+v", trace, want)
	}
}

func TestTraceEmptyForMissingPath(t *testing.T) {
	store := newTestStore(map[string]string{"APP_DEBUG": "true"})

	trace := store.Trace("nope")
	if len(trace.Entries) != 0 {
		t.Fatalf("expected no entries, got %+v", trace.Entries)
	}
	if trace.Path != "nope" {
		t.Fatalf("path = %q", trace.Path)
	}
}

func TestTraceJSONRoundTrip(t *testing.T) {
	store := newTestStore(map[string]string{"APP_DEBUG": "true"})

	trace := store.Trace("app")
	payload, err := trace.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	decoded, err := TraceFromJSON(payload)
	if err != nil {
		t.Fatalf("TraceFromJSON: %v", err)
	}
	if !reflect.DeepEqual(decoded, trace) {
		t.Fatalf("round trip = %+v, want %+v", decoded, trace)
	}
}
