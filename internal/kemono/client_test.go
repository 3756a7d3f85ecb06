package kemono

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchPostsPaging(t *testing.T) {
	makePage := func(start, count int) []Post {
		page := make([]Post, count)
		for i := range page {
			page[i] = Post{
				ID:      fmt.Sprintf("post-%d", start+i),
				Title:   fmt.Sprintf("VOD review %d", start+i),
				Service: "patreon",
				User:    "coach",
			}
		}
		return page
	}

	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.String())
		assert.Equal(t, "/patreon/user/12345", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("o") {
		case "0":
			json.NewEncoder(w).Encode(makePage(0, 50))
		case "50":
			json.NewEncoder(w).Encode(makePage(50, 3))
		default:
			json.NewEncoder(w).Encode([]Post{})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)

	posts, err := client.FetchPosts(context.Background(), "patreon", "12345")
	require.NoError(t, err)
	assert.Len(t, posts, 53)
	assert.Equal(t, "post-0", posts[0].ID)
	assert.Equal(t, "post-52", posts[52].ID)
	assert.Len(t, requests, 3, "stops after the first empty page")
}

func TestClient_FetchPostsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "creator not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.FetchPosts(context.Background(), "patreon", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestPost_VideoURL(t *testing.T) {
	withFile := Post{}
	withFile.File.Path = "/data/video.mp4"
	withFile.Embed.URL = "https://youtu.be/abc"
	assert.Equal(t, "https://kemono.su/data/video.mp4", withFile.VideoURL("https://kemono.su"))

	embedOnly := Post{}
	embedOnly.Embed.URL = "https://youtu.be/abc"
	assert.Equal(t, "https://youtu.be/abc", embedOnly.VideoURL("https://kemono.su"))

	empty := Post{}
	assert.Empty(t, empty.VideoURL("https://kemono.su"))
}
