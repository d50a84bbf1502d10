package monday

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a parsed HTTP exchange: the status code, the decoded JSON
// body, and the response headers. It is retained on classified errors so
// callers can inspect the original payload.
type Response struct {
	StatusCode int
	Body       map[string]any
	Header     http.Header
}

// Dig walks body through the given keys and returns the value at the end of
// the path, or nil if any level is absent or not an object. Success bodies
// are nested ({"data": {"boards": [...]}}) and any level may be missing, so
// consumers navigate with Dig rather than chained type assertions.
func Dig(body map[string]any, keys ...string) any {
	var current any = body
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[key]
		if !ok {
			return nil
		}
	}
	return current
}

// Decode re-encodes src (typically a Dig result) as JSON and decodes it
// into dst, bridging the untyped response body and the caller's structs.
func Decode(dst any, src any) error {
	if src == nil {
		return fmt.Errorf("monday: decode: source value is absent")
	}
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("monday: decode: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("monday: decode: %w", err)
	}
	return nil
}
