//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaderLists checks that a comma separated response header such as
// Access-Control-Allow-Headers names every value, ignoring case.
func AssertHeaderLists(t *testing.T, w *httptest.ResponseRecorder, key string, values ...string) {
	t.Helper()
	listed := map[string]bool{}
	for _, line := range w.Header().Values(key) {
		for _, v := range strings.Split(line, ",") {
			listed[http.CanonicalHeaderKey(strings.TrimSpace(v))] = true
		}
	}
	for _, v := range values {
		assert.Truef(t, listed[http.CanonicalHeaderKey(v)], "%s does not list %q: %v", key, v, w.Header().Values(key))
	}
}
