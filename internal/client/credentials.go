package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Credentials is the token store the transport reads on every request and
// clears when the server rejects a token.
type Credentials interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

// MemoryCredentials holds the token in memory only. Useful for tests and
// short-lived scripts.
type MemoryCredentials struct {
	mu    sync.Mutex
	token string
}

func NewMemoryCredentials(token string) *MemoryCredentials {
	return &MemoryCredentials{token: token}
}

func (c *MemoryCredentials) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *MemoryCredentials) SetToken(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	return nil
}

func (c *MemoryCredentials) Clear() error {
	return c.SetToken("")
}

// FileCredentials persists the token to a file so separate CLI invocations
// share a session.
type FileCredentials struct {
	mu   sync.Mutex
	path string
}

func NewFileCredentials(path string) *FileCredentials {
	return &FileCredentials{path: path}
}

func (c *FileCredentials) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (c *FileCredentials) SetToken(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(c.path, []byte(token), 0o600)
}

func (c *FileCredentials) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
