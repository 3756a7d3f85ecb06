package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"email":    "newuser@test.local",
				"username": "newuser",
				"password": "password123",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var user domain.User
				testutil.AssertJSONResponse(t, resp, &user)
				assert.Equal(t, "newuser", user.Username)
				assert.Empty(t, user.HashedPassword, "password hash must never be serialized")
			},
		},
		{
			name: "missing fields",
			request: map[string]string{
				"username": "nopassword",
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "duplicate username",
			request: map[string]string{
				"email":    "other@test.local",
				"username": "existinguser",
				"password": "password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.BaseURL()+"/users/", "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Token(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, password := testutil.NewUserBuilder().
		WithUsername("loginuser").
		Build(t, ts.DB.DB)

	postForm := func(username, pass string) *http.Response {
		form := url.Values{}
		form.Set("username", username)
		form.Set("password", pass)

		resp, err := http.Post(ts.BaseURL()+"/token", "application/x-www-form-urlencoded",
			strings.NewReader(form.Encode()))
		require.NoError(t, err)
		return resp
	}

	t.Run("valid credentials", func(t *testing.T) {
		resp := postForm("loginuser", password)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var tokenResp struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		}
		testutil.AssertJSONResponse(t, resp, &tokenResp)
		assert.NotEmpty(t, tokenResp.AccessToken)
		assert.Equal(t, "bearer", tokenResp.TokenType)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postForm("loginuser", "wrong")
		defer resp.Body.Close()
		testutil.AssertDetailResponse(t, resp, http.StatusUnauthorized, "Incorrect username or password")
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := postForm("ghost", password)
		defer resp.Body.Close()
		testutil.AssertDetailResponse(t, resp, http.StatusUnauthorized, "Incorrect username or password")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := authedRequest(t, http.MethodGet, ts.BaseURL()+"/users/me", token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var got domain.User
	testutil.AssertJSONResponse(t, resp, &got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Username, got.Username)
}

func TestAuthHandler_ListUsersRequiresAdmin(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, userToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, adminToken := testutil.NewUserBuilder().AsAdmin().BuildAndAuthenticate(t, ts)

	resp := authedRequest(t, http.MethodGet, ts.BaseURL()+"/users/", userToken, nil)
	defer resp.Body.Close()
	testutil.AssertDetailResponse(t, resp, http.StatusForbidden, "Not enough permissions")

	resp = authedRequest(t, http.MethodGet, ts.BaseURL()+"/users/", adminToken, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var users []domain.User
	testutil.AssertJSONResponse(t, resp, &users)
	assert.Len(t, users, 2)
}
