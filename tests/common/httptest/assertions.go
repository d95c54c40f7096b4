//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorEnvelope mirrors the error body. Detail stays raw: availability
// failures send reasons per field, validation failures a message per field.
type ErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail  json.RawMessage `json:"detail"`
	TraceID string          `json:"trace_id"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "Failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, unless expectedErrorMsg is
// empty, that the message contains it. The decoded envelope is returned for
// assertions on Detail.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) ErrorEnvelope {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())

	var env ErrorEnvelope
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to decode error response JSON: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, env.Error.Message, expectedErrorMsg, "Response error message doesn't contain expected text")
	}
	return env
}

// AssertReason checks that one of the availability reasons for field
// contains want.
func AssertReason(t *testing.T, env ErrorEnvelope, field, want string) {
	t.Helper()
	var reasons map[string][]string
	if !assert.NoErrorf(t, json.Unmarshal(env.Detail, &reasons), "detail is not a reason map: %s", env.Detail) {
		return
	}
	for _, r := range reasons[field] {
		if strings.Contains(r, want) {
			return
		}
	}
	assert.Failf(t, "reason not found", "no %q reason containing %q in %v", field, want, reasons)
}
