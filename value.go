package envmap

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// decodeValue turns a raw table value into its caller-facing form. Non-text
// values pass through untouched. With parse enabled, text is tried as JSON
// and falls back to the original text when it does not parse.
func decodeValue(raw any, cfg callConfig) any {
	text, ok := raw.(string)
	if !ok {
		return raw
	}
	if !cfg.parse {
		return text
	}
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return text
	}
	return parsed
}

// encodeValue turns a caller value into the text stored in the table. The
// transform is total: strings pass through, stringify attempts JSON, and
// everything else degrades to plain textual coercion.
func encodeValue(value any, cfg callConfig) string {
	if text, ok := value.(string); ok {
		return text
	}
	if cfg.stringify {
		if data, err := json.Marshal(value); err == nil {
			return string(data)
		}
	}
	return coerceString(value)
}

func coerceString(value any) string {
	if text, err := cast.ToStringE(value); err == nil {
		return text
	}
	return fmt.Sprintf("%v", value)
}
