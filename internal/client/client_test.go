package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_BearerInjection(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	creds := NewMemoryCredentials("tok123")
	c := New(server.URL, creds)

	var out map[string]bool
	require.NoError(t, c.Get(context.Background(), "/anything", &out))
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.True(t, out["ok"])
}

func TestClient_NoTokenSendsNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryCredentials(""))
	require.NoError(t, c.Get(context.Background(), "/anything", nil))
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedClearsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}))
	defer server.Close()

	creds := NewMemoryCredentials("stale-token")
	hookCalled := false
	c := New(server.URL, creds, WithUnauthorizedHook(func() {
		hookCalled = true
	}))

	err := c.Get(context.Background(), "/users/me", nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Could not validate credentials", apiErr.Message)

	assert.Empty(t, creds.Token(), "credentials should be cleared after a 401")
	assert.True(t, hookCalled)
}

func TestClient_ErrorMessageFromDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": [{"loc": ["body", "title"], "msg": "field required", "type": "value_error.missing"}]}`))
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryCredentials("tok"))

	err := c.Post(context.Background(), "/goals/", map[string]string{}, nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "body.title: field required", apiErr.Message)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostFormValue("username") != "dom" || r.PostFormValue("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Incorrect username or password"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "fresh-token", "token_type": "bearer"}`))
	}))
	defer server.Close()

	creds := NewMemoryCredentials("")
	c := New(server.URL, creds)

	require.NoError(t, c.Login(context.Background(), "dom", "secret"))
	assert.Equal(t, "fresh-token", creds.Token())

	err := c.Login(context.Background(), "dom", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Incorrect username or password", err.(*APIError).Message)
}

func TestClient_RedirectCap(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+r.URL.Path, http.StatusFound)
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryCredentials(""))
	err := c.Get(context.Background(), "/loop", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped after 5 redirects")
}

func TestFileCredentials(t *testing.T) {
	path := t.TempDir() + "/nested/token"
	creds := NewFileCredentials(path)

	assert.Empty(t, creds.Token())

	require.NoError(t, creds.SetToken("abc"))
	assert.Equal(t, "abc", creds.Token())

	require.NoError(t, creds.Clear())
	assert.Empty(t, creds.Token())

	// Clearing twice is fine
	require.NoError(t, creds.Clear())
}
