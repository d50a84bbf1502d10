package monday

import (
	"testing"
)

func classifyErr(t *testing.T, resp *Response) *Error {
	t.Helper()
	body, err := Classify(resp)
	if err == nil {
		t.Fatalf("Classify() = %v, expected an error", body)
	}
	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("Classify() error = %v, expected *Error", err)
	}
	return apiErr
}

func Test_Classify_SuccessWithCleanBody(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body: map[string]any{
			"data":       map[string]any{"boards": []any{}},
			"account_id": float64(1),
		},
	}

	body, err := Classify(resp)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if Dig(body, "data", "boards") == nil {
		t.Error("Classify() body lost the data payload")
	}
}

// Test_Classify_TwoHundredWithErrors is the regression test for the
// 200-with-errors quirk: a 2xx status with an errors array must fail.
func Test_Classify_TwoHundredWithErrors(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body: map[string]any{
			"errors": []any{
				map[string]any{
					"message": "invalid board id",
					"extensions": map[string]any{
						"code": "InvalidBoardIdException",
					},
				},
			},
			"account_id": float64(1),
		},
	}

	apiErr := classifyErr(t, resp)
	if apiErr.Kind != KindInvalidRequest {
		t.Errorf("Kind = %v, want KindInvalidRequest", apiErr.Kind)
	}
	if apiErr.Message != "invalid board id" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "invalid board id")
	}
	if apiErr.Code != "InvalidBoardIdException" {
		t.Errorf("Code = %v, want InvalidBoardIdException", apiErr.Code)
	}
}

func Test_Classify_StatusTable(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{400, KindInvalidRequest},
		{401, KindAuthorization},
		{403, KindAuthorization},
		{404, KindResourceNotFound},
		{429, KindRateLimit},
		{500, KindInternalServer},
		{502, KindUnclassified},
	}

	for _, tt := range tests {
		apiErr := classifyErr(t, &Response{StatusCode: tt.status, Body: map[string]any{}})
		if apiErr.Kind != tt.want {
			t.Errorf("status %d: Kind = %v, want %v", tt.status, apiErr.Kind, tt.want)
		}
		if apiErr.Code != tt.status {
			t.Errorf("status %d: Code = %v, want the HTTP status", tt.status, apiErr.Code)
		}
	}
}

func Test_Classify_TopLevelCodeWinsOverErrorsArray(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body: map[string]any{
			"error_code":    "ResourceNotFoundException",
			"error_message": "board not found",
			"errors": []any{
				map[string]any{
					"message":    "something else",
					"extensions": map[string]any{"code": "InvalidBoardIdException"},
				},
			},
		},
	}

	apiErr := classifyErr(t, resp)
	if apiErr.Kind != KindResourceNotFound {
		t.Errorf("Kind = %v, want KindResourceNotFound", apiErr.Kind)
	}
	if apiErr.Code != "ResourceNotFoundException" {
		t.Errorf("Code = %v, want ResourceNotFoundException", apiErr.Code)
	}
	if apiErr.Message != "board not found" {
		t.Errorf("Message = %q, want error_message to win", apiErr.Message)
	}
}

func Test_Classify_ExtensionsErrorCodeFallback(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body: map[string]any{
			"errors": []any{
				map[string]any{
					"message":    "not allowed",
					"extensions": map[string]any{"error_code": "USER_UNAUTHORIZED"},
				},
			},
		},
	}

	apiErr := classifyErr(t, resp)
	if apiErr.Kind != KindAuthorization {
		t.Errorf("Kind = %v, want KindAuthorization", apiErr.Kind)
	}
}

func Test_Classify_UnknownCodeIsUnclassified(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body: map[string]any{
			"errors": []any{
				map[string]any{
					"message":    "mystery",
					"extensions": map[string]any{"code": "SomeBrandNewException"},
				},
			},
		},
	}

	apiErr := classifyErr(t, resp)
	if apiErr.Kind != KindUnclassified {
		t.Errorf("Kind = %v, want KindUnclassified", apiErr.Kind)
	}
	if apiErr.Code != "SomeBrandNewException" {
		t.Errorf("Code = %v, the unknown code must be retained", apiErr.Code)
	}
}

// An unknown code under a non-2xx status keeps the status-derived kind; the
// code still travels as data.
func Test_Classify_UnknownCodeKeepsStatusKind(t *testing.T) {
	resp := &Response{
		StatusCode: 400,
		Body: map[string]any{
			"error_code":    "SomeBrandNewException",
			"error_message": "bad request",
		},
	}

	apiErr := classifyErr(t, resp)
	if apiErr.Kind != KindInvalidRequest {
		t.Errorf("Kind = %v, want status-derived KindInvalidRequest", apiErr.Kind)
	}
	if apiErr.Code != "SomeBrandNewException" {
		t.Errorf("Code = %v, want the unknown code", apiErr.Code)
	}
}

// A known in-body code refines the kind even alongside a non-2xx status.
func Test_Classify_CodeRefinesNonTwoHundred(t *testing.T) {
	resp := &Response{
		StatusCode: 400,
		Body: map[string]any{
			"error_code": "ComplexityException",
		},
	}

	apiErr := classifyErr(t, resp)
	if apiErr.Kind != KindComplexity {
		t.Errorf("Kind = %v, want KindComplexity", apiErr.Kind)
	}
}

func Test_Classify_ComplexityRule(t *testing.T) {
	tests := []struct {
		code string
		want Kind
	}{
		{"ComplexityException", KindComplexity},
		{"COMPLEXITY_BUDGET_EXHAUSTED", KindRateLimit},
	}

	for _, tt := range tests {
		apiErr := classifyErr(t, &Response{
			StatusCode: 200,
			Body:       map[string]any{"error_code": tt.code},
		})
		if apiErr.Kind != tt.want {
			t.Errorf("code %s: Kind = %v, want %v", tt.code, apiErr.Kind, tt.want)
		}
		if !IsRateLimited(apiErr) {
			t.Errorf("code %s: IsRateLimited = false, want true", tt.code)
		}
	}
}

func Test_Classify_MessageFromErrorsArray(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body: map[string]any{
			"errors": []any{
				map[string]any{"message": "first"},
				map[string]any{"message": "second"},
			},
		},
	}

	apiErr := classifyErr(t, resp)
	if apiErr.Message != "first; second" {
		t.Errorf("Message = %q, want stringified errors array", apiErr.Message)
	}
}

func Test_Classify_BodyStatusCodeUsedAsCode(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body: map[string]any{
			"error_message": "oops",
			"status_code":   float64(422),
		},
	}

	apiErr := classifyErr(t, resp)
	if apiErr.Code != float64(422) {
		t.Errorf("Code = %v, want the body status_code", apiErr.Code)
	}
}

func Test_Error_ErrorData(t *testing.T) {
	withData := &Error{Response: &Response{Body: map[string]any{
		"error_data": map[string]any{"resource_type": "board"},
	}}}
	if got := withData.ErrorData()["resource_type"]; got != "board" {
		t.Errorf("ErrorData() = %v, want resource_type board", got)
	}

	without := &Error{Response: &Response{Body: map[string]any{}}}
	if data := without.ErrorData(); data == nil || len(data) != 0 {
		t.Errorf("ErrorData() = %v, want empty map", data)
	}

	detached := &Error{}
	if data := detached.ErrorData(); data == nil || len(data) != 0 {
		t.Errorf("ErrorData() with no response = %v, want empty map", data)
	}
}

func Test_Dig(t *testing.T) {
	body := map[string]any{
		"data": map[string]any{
			"boards": []any{map[string]any{"id": "1"}},
		},
	}

	if Dig(body, "data", "boards") == nil {
		t.Error("Dig() lost a present path")
	}
	if Dig(body, "data", "missing") != nil {
		t.Error("Dig() invented a value for an absent key")
	}
	if Dig(body, "data", "boards", "id") != nil {
		t.Error("Dig() descended through a non-object level")
	}
	if Dig(nil, "data") != nil {
		t.Error("Dig(nil) must be safe")
	}
}
