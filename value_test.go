package envmap

import (
	"reflect"
	"testing"
)

func TestDecodeValue(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		cfg  callConfig
		want any
	}{
		{name: "plain text without parse", raw: "42", want: "42"},
		{name: "number with parse", raw: "42", cfg: callConfig{parse: true}, want: float64(42)},
		{name: "bool with parse", raw: "true", cfg: callConfig{parse: true}, want: true},
		{name: "object with parse", raw: `{"a":1}`, cfg: callConfig{parse: true}, want: map[string]any{"a": float64(1)}},
		{name: "invalid json falls back to text", raw: "{not json", cfg: callConfig{parse: true}, want: "{not json"},
		{name: "non-text passes through", raw: 7, cfg: callConfig{parse: true}, want: 7},
		{name: "null with parse", raw: "null", cfg: callConfig{parse: true}, want: nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := decodeValue(tc.raw, tc.cfg); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("decodeValue(%v) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestEncodeValue(t *testing.T) {
	cases := []struct {
		name  string
		value any
		cfg   callConfig
		want  string
	}{
		{name: "string passes through", value: "pony", want: "pony"},
		{name: "string ignores stringify", value: "pony", cfg: callConfig{stringify: true}, want: "pony"},
		{name: "number coerced", value: 42, want: "42"},
		{name: "bool coerced", value: true, want: "true"},
		{name: "map stringified", value: map[string]any{"a": 1}, cfg: callConfig{stringify: true}, want: `{"a":1}`},
		{name: "map without stringify coerces", value: map[string]any{}, want: "map[]"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeValue(tc.value, tc.cfg); got != tc.want {
				t.Fatalf("encodeValue(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}
