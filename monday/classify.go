package monday

import (
	"fmt"
	"strings"
)

// failureKeys are the reserved body keys whose presence marks a failure
// even under a 2xx status. The API routinely returns HTTP 200 with a
// GraphQL-level error embedded in the body, so every response body is
// inspected regardless of status.
var failureKeys = [...]string{"errors", "error_code", "error_message"}

// statusKinds maps non-2xx HTTP statuses to their default error kind.
// Statuses absent from the table classify as KindUnclassified.
var statusKinds = map[int]Kind{
	400: KindInvalidRequest,
	401: KindAuthorization,
	403: KindAuthorization,
	404: KindResourceNotFound,
	429: KindRateLimit,
	500: KindInternalServer,
}

// codeKinds maps in-body error codes to kinds. Codes absent from the table
// keep the status-derived kind and travel on the error as diagnostic data.
//
// ComplexityException always maps to KindComplexity and
// COMPLEXITY_BUDGET_EXHAUSTED always to KindRateLimit; callers wanting one
// policy for both match IsRateLimited.
var codeKinds = map[string]Kind{
	"InvalidBoardIdException":     KindInvalidRequest,
	"InvalidItemIdException":      KindInvalidRequest,
	"InvalidColumnIdException":    KindInvalidRequest,
	"InvalidUserIdException":      KindInvalidRequest,
	"InvalidVersionException":     KindInvalidRequest,
	"InvalidArgumentException":    KindInvalidRequest,
	"CreateBoardException":        KindInvalidRequest,
	"ItemsLimitationException":    KindInvalidRequest,
	"ItemNameTooLongException":    KindInvalidRequest,
	"ColumnValueException":        KindInvalidRequest,
	"CorrectedValueException":     KindInvalidRequest,
	"UserUnauthorizedException":   KindAuthorization,
	"USER_UNAUTHORIZED":           KindAuthorization,
	"DeleteLastGroupException":    KindAuthorization,
	"ResourceNotFoundException":   KindResourceNotFound,
	"RECORD_INVALID":              KindResourceNotFound,
	"ComplexityException":         KindComplexity,
	"COMPLEXITY_BUDGET_EXHAUSTED": KindRateLimit,
	"INTERNAL_SERVER_ERROR":       KindInternalServer,
}

// Classify decides success or failure for a response. On success (2xx
// status and a body free of failure keys) it returns the parsed body. On
// failure it returns a *Error whose kind is chosen by, in priority order,
// the non-2xx status table, refined by any in-body error code found via
// the resolution order: top-level error_code, then the first element of
// the errors array (extensions.code, then extensions.error_code).
func Classify(resp *Response) (map[string]any, error) {
	if resp == nil {
		return nil, fmt.Errorf("monday: classify: nil response")
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if ok && !hasFailureKeys(resp.Body) {
		return resp.Body, nil
	}

	kind := KindUnclassified
	if !ok {
		if k, found := statusKinds[resp.StatusCode]; found {
			kind = k
		}
	}

	code := resolveCode(resp.Body)
	if code != "" {
		if k, found := codeKinds[code]; found {
			kind = k
		}
	}

	return nil, &Error{
		Kind:     kind,
		Message:  resolveMessage(resp),
		Code:     resolveCodeValue(resp, code),
		Response: resp,
	}
}

func hasFailureKeys(body map[string]any) bool {
	for _, key := range failureKeys {
		if _, present := body[key]; present {
			return true
		}
	}
	return false
}

// resolveCode extracts the governing error code: a top-level error_code
// wins over codes carried in the errors array.
func resolveCode(body map[string]any) string {
	if code, ok := body["error_code"].(string); ok && code != "" {
		return code
	}

	errs, ok := body["errors"].([]any)
	if !ok || len(errs) == 0 {
		return ""
	}
	first, ok := errs[0].(map[string]any)
	if !ok {
		return ""
	}
	ext, ok := first["extensions"].(map[string]any)
	if !ok {
		return ""
	}
	if code, ok := ext["code"].(string); ok && code != "" {
		return code
	}
	if code, ok := ext["error_code"].(string); ok && code != "" {
		return code
	}
	return ""
}

// resolveMessage picks the human-readable message: error_message, else the
// stringified errors array, else a status-line fallback.
func resolveMessage(resp *Response) string {
	if msg, ok := resp.Body["error_message"].(string); ok && msg != "" {
		return msg
	}

	if errs, ok := resp.Body["errors"].([]any); ok && len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			if m, ok := e.(map[string]any); ok {
				if msg, ok := m["message"].(string); ok && msg != "" {
					msgs = append(msgs, msg)
					continue
				}
			}
			msgs = append(msgs, fmt.Sprintf("%v", e))
		}
		return strings.Join(msgs, "; ")
	}

	return fmt.Sprintf("the API returned HTTP %d", resp.StatusCode)
}

// resolveCodeValue picks the error's code field: the resolved in-body code,
// else the body's status_code, else the HTTP status.
func resolveCodeValue(resp *Response, code string) any {
	if code != "" {
		return code
	}
	if sc, ok := resp.Body["status_code"]; ok {
		return sc
	}
	return resp.StatusCode
}
