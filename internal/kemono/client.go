// Package kemono fetches creator post listings from the kemono.su API for
// the video import workflow.
package kemono

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const pageSize = 50

// Post is one entry from a creator's feed. Only the fields the importer
// needs are decoded.
type Post struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Service   string   `json:"service"`
	User      string   `json:"user"`
	Content   string   `json:"content"`
	Added     string   `json:"added"`
	Published string   `json:"published"`
	Tags      []string `json:"tags"`
	File      struct {
		Name string `json:"name"`
		Path string `json:"path"`
	} `json:"file"`
	Embed struct {
		URL string `json:"url"`
	} `json:"embed"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchPosts pages through a creator's feed until the API returns an empty
// page.
func (c *Client) FetchPosts(ctx context.Context, service, creatorID string) ([]Post, error) {
	var all []Post

	for offset := 0; ; offset += pageSize {
		page, err := c.fetchPage(ctx, service, creatorID, offset)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, service, creatorID string, offset int) ([]Post, error) {
	url := fmt.Sprintf("%s/%s/user/%s?o=%d", c.baseURL, service, creatorID, offset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kemono request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("kemono request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("failed to decode kemono response: %w", err)
	}

	return posts, nil
}

// VideoURL resolves the playable URL for a post: a direct file when one is
// attached, otherwise the embed link.
func (p Post) VideoURL(baseURL string) string {
	if p.File.Path != "" {
		return baseURL + p.File.Path
	}
	return p.Embed.URL
}
