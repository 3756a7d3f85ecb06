package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeErrorBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "string detail",
			body: `{"detail": "Incorrect username or password"}`,
			want: "Incorrect username or password",
		},
		{
			name: "validation list",
			body: `{"detail": [{"loc": ["body", "title"], "msg": "field required", "type": "value_error.missing"}]}`,
			want: "body.title: field required",
		},
		{
			name: "validation list with multiple entries",
			body: `{"detail": [{"loc": ["body", "email"], "msg": "field required", "type": "value_error.missing"}, {"loc": ["body", "password"], "msg": "field required", "type": "value_error.missing"}]}`,
			want: "body.email: field required; body.password: field required",
		},
		{
			name: "validation loc with array index",
			body: `{"detail": [{"loc": ["body", "champions", 0, "category"], "msg": "invalid category", "type": "value_error.const"}]}`,
			want: "body.champions.0.category: invalid category",
		},
		{
			name: "detail object with msg",
			body: `{"detail": {"msg": "something broke", "code": 17}}`,
			want: "something broke",
		},
		{
			name: "detail object without msg",
			body: `{"detail": {"code": 17}}`,
			want: `{"code": 17}`,
		},
		{
			name: "json without detail key",
			body: `{"error": "teapot"}`,
			want: `{"error": "teapot"}`,
		},
		{
			name: "not json",
			body: `<html>502 Bad Gateway</html>`,
			want: "",
		},
		{
			name: "empty body",
			body: ``,
			want: "",
		},
		{
			name: "empty object",
			body: `{}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeErrorBody([]byte(tt.body)))
		})
	}
}

func TestNormalizeError(t *testing.T) {
	t.Run("body wins over transport error", func(t *testing.T) {
		got := NormalizeError(400, []byte(`{"detail": "bad input"}`), errors.New("read failed"))
		assert.Equal(t, "bad input", got)
	})

	t.Run("transport error when body is opaque", func(t *testing.T) {
		got := NormalizeError(0, nil, errors.New("connection refused"))
		assert.Equal(t, "connection refused", got)
	})

	t.Run("status fallback", func(t *testing.T) {
		got := NormalizeError(502, []byte("<html></html>"), nil)
		assert.Equal(t, "Request failed with status 502", got)
	})

	t.Run("unknown error", func(t *testing.T) {
		got := NormalizeError(0, nil, nil)
		assert.Equal(t, "Unknown error occurred", got)
	})
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&APIError{StatusCode: 401}))
	assert.False(t, IsUnauthorized(&APIError{StatusCode: 403}))
	assert.False(t, IsUnauthorized(errors.New("not an api error")))
}
