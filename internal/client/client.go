// Package client is the transport layer the state store and CLI talk
// through: one fixed base URL, bearer injection on every request, and a
// global 401 interceptor that drops the stored session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxRedirects = 5

// UnauthorizedHook runs after a 401 response has cleared the stored
// credentials. The CLI uses it to tell the user to log in again.
type UnauthorizedHook func()

type Client struct {
	baseURL        string
	httpClient     *http.Client
	creds          Credentials
	onUnauthorized UnauthorizedHook
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithUnauthorizedHook(hook UnauthorizedHook) Option {
	return func(c *Client) {
		c.onUnauthorized = hook
	}
}

func New(baseURL string, creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// PostForm sends form-encoded data; the token endpoint requires it.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, body, "application/x-www-form-urlencoded", out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, reader, "application/json", out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		log.Printf("WARN [client] no access token stored, sending unauthenticated request to %s", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: NormalizeError(0, nil, err)}
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    NormalizeError(resp.StatusCode, respBody, readErr),
		}
	}
	if readErr != nil {
		return readErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// handleUnauthorized clears the stored session so the next request does not
// retry a token the server already rejected.
func (c *Client) handleUnauthorized() {
	if err := c.creds.Clear(); err != nil {
		log.Printf("ERROR [client] failed to clear credentials: %v", err)
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// Login runs the OAuth2 password flow and stores the returned token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.PostForm(ctx, "/token", form, &tokenResp); err != nil {
		return err
	}
	if tokenResp.AccessToken == "" {
		return errors.New("server returned an empty token")
	}
	return c.creds.SetToken(tokenResp.AccessToken)
}

// Logout drops the stored token. Purely client-side; tokens are stateless.
func (c *Client) Logout() error {
	return c.creds.Clear()
}
