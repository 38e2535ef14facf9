package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the normalized error body. May be empty.
	Message string
}

// Error returns the status and message.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote request failed with status %d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is ErrRequestFailed.
func (e *StatusError) Is(target error) bool {
	return target == ErrRequestFailed
}

// NormalizeErrorBody extracts a human-readable message from an error body.
//
// A JSON object with a non-empty "error" field yields that field; string
// values are used as-is and other values are serialized. Any other JSON object
// or array yields its compact serialization. A JSON string yields its value.
// A body that is not JSON yields the text unchanged, surrounding whitespace
// included. Empty and whitespace-only bodies and JSON null yield "".
func NormalizeErrorBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return string(body)
	}

	switch val := v.(type) {
	case map[string]any:
		if msg, ok := val["error"]; ok && truthy(msg) {
			if s, ok := msg.(string); ok {
				return s
			}
			return compact(msg)
		}
		return compact(val)
	case []any:
		return compact(val)
	case string:
		return val
	case nil:
		return ""
	default:
		return string(trimmed)
	}
}

// truthy reports whether v is a present, non-empty value.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	default:
		return true
	}
}

func compact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
