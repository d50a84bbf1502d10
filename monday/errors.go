package monday

import (
	"errors"
	"fmt"
)

// Kind is the classification bucket for an API failure. Callers are
// expected to pattern-match on Kind and decide per-kind policy (retry
// rate limits, surface invalid requests, and so on); the client itself
// never retries.
type Kind int

const (
	// KindUnclassified covers failures whose code is absent from the
	// mapping table, or failures with no resolvable code at all. The
	// unrecognized code is kept on the error as diagnostic data.
	KindUnclassified Kind = iota
	// KindAuthorization: bad, missing, or expired credential, or
	// insufficient permission.
	KindAuthorization
	// KindInvalidRequest: malformed arguments, bad entity ids,
	// oversized input.
	KindInvalidRequest
	// KindResourceNotFound: a referenced entity does not exist.
	KindResourceNotFound
	// KindRateLimit: the per-minute request or complexity budget is
	// exhausted.
	KindRateLimit
	// KindComplexity: a single query exceeded its cost allowance. A
	// specialization of rate limiting; IsRateLimited matches both.
	KindComplexity
	// KindInternalServer: the remote side failed.
	KindInternalServer
)

func (k Kind) String() string {
	switch k {
	case KindAuthorization:
		return "authorization"
	case KindInvalidRequest:
		return "invalid request"
	case KindResourceNotFound:
		return "resource not found"
	case KindRateLimit:
		return "rate limit"
	case KindComplexity:
		return "complexity"
	case KindInternalServer:
		return "internal server"
	default:
		return "unclassified"
	}
}

// Error is a classified API failure. It always retains the human-readable
// message, the governing numeric-or-string code, and the full original
// response, so callers never need to re-parse the raw HTTP exchange.
type Error struct {
	Kind     Kind
	Message  string
	Code     any
	Response *Response
}

func (e *Error) Error() string {
	if e.Code == nil {
		return fmt.Sprintf("monday: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("monday: %s: %s (code %v)", e.Kind, e.Message, e.Code)
}

// ErrorData returns the error_data object from the response body, or an
// empty map when absent. It is read lazily from the retained response.
func (e *Error) ErrorData() map[string]any {
	if e.Response == nil {
		return map[string]any{}
	}
	if data, ok := e.Response.Body["error_data"].(map[string]any); ok {
		return data
	}
	return map[string]any{}
}

// AsError unwraps err into a classified *Error when one is present.
// Transport-level faults (dial, TLS, timeout) are ordinary wrapped errors
// and report false here.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is a classified API error of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == kind
}

// IsRateLimited reports whether err is a rate-limit or complexity failure.
// The API signals query-cost overages through either code family, so
// callers with a single backoff policy should match this rather than the
// individual kinds.
func IsRateLimited(err error) bool {
	return IsKind(err, KindRateLimit) || IsKind(err, KindComplexity)
}
