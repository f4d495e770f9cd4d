package envmap

import (
	"reflect"
	"testing"
)

func TestSchemaFlattensSubtree(t *testing.T) {
	store := newTestStore(map[string]string{
		"APP_SERVER_HOST": "localhost",
		"APP_SERVER_PORT": "8080",
		"APP_DEBUG":       "true",
	})

	fields := store.Schema("app", WithParse(true))
	want := []FieldDescriptor{
		{Path: "debug", Type: "bool"},
		{Path: "server.host", Type: "string"},
		{Path: "server.port", Type: "float64"},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("Schema = %+v, want %+v", fields, want)
	}
}

func TestSchemaWithoutParseIsAllStrings(t *testing.T) {
	store := newTestStore(map[string]string{
		"APP_SERVER_PORT": "8080",
		"APP_DEBUG":       "true",
	})

	fields := store.Schema("app")
	want := []FieldDescriptor{
		{Path: "debug", Type: "string"},
		{Path: "server.port", Type: "string"},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("Schema = %+v, want %+v", fields, want)
	}
}

func TestSchemaMissingPath(t *testing.T) {
	store := newTestStore(map[string]string{"APP_DEBUG": "true"})

	fields := store.Schema("nothing.here")
	if len(fields) != 0 {
		t.Fatalf("expected empty schema, got %+v", fields)
	}
}

func TestSchemaLeafValue(t *testing.T) {
	store := newTestStore(map[string]string{"APP_DEBUG": "true"})

	fields := store.Schema("app.debug")
	if len(fields) != 0 {
		t.Fatalf("expected no descriptors for a scalar leaf, got %+v", fields)
	}
}

func TestSchemaArrayValue(t *testing.T) {
	store := newTestStore(map[string]string{"APP_TAGS": `["a","b"]`})

	fields := store.Schema("app", WithParse(true))
	want := []FieldDescriptor{{Path: "tags", Type: "[]string"}}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("Schema = %+v, want %+v", fields, want)
	}
}
