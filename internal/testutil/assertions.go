package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertJSONResponse decodes JSON response into v and verifies success
func AssertJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	err = json.Unmarshal(body, v)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))
}

// AssertDetailResponse verifies an error response carries the expected
// status and detail message
func AssertDetailResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedDetail string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var envelope struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope), "error body is not a detail envelope: %s", string(body))
	assert.Equal(t, expectedDetail, envelope.Detail, "detail message mismatch")
}
