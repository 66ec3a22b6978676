package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostsURL(t *testing.T) {
	tests := []struct {
		name     string
		blogURL  string
		pageSize int
		expected string
	}{
		{
			name:     "default size",
			blogURL:  "https://example.blogspot.com",
			pageSize: 25,
			expected: "https://example.blogspot.com/feeds/posts/default?max-results=25",
		},
		{
			name:     "trailing slash trimmed",
			blogURL:  "https://example.blogspot.com/",
			pageSize: 25,
			expected: "https://example.blogspot.com/feeds/posts/default?max-results=25",
		},
		{
			name:     "zero size falls back to default",
			blogURL:  "https://example.blogspot.com",
			pageSize: 0,
			expected: "https://example.blogspot.com/feeds/posts/default?max-results=25",
		},
		{
			name:     "negative size falls back to default",
			blogURL:  "https://example.blogspot.com",
			pageSize: -5,
			expected: "https://example.blogspot.com/feeds/posts/default?max-results=25",
		},
		{
			name:     "oversized clamped to max",
			blogURL:  "https://example.blogspot.com",
			pageSize: 9000,
			expected: "https://example.blogspot.com/feeds/posts/default?max-results=500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PostsURL(tt.blogURL, tt.pageSize))
		})
	}
}

func TestCommentsURL(t *testing.T) {
	assert.Equal(t, "https://example.blogspot.com/feeds/12345/comments/default",
		CommentsURL("https://example.blogspot.com", "12345"))
	assert.Equal(t, "https://example.blogspot.com/feeds/12345/comments/default",
		CommentsURL("https://example.blogspot.com/", "12345"))
}

func TestPostID(t *testing.T) {
	tests := []struct {
		name    string
		entryID string
		want    string
		ok      bool
	}{
		{"blogger tag id", "tag:blogger.com,1999:blog-8917.post-3141592653", "3141592653", true},
		{"bare post marker", "post-42", "42", true},
		{"no post marker", "tag:blogger.com,1999:blog-8917", "", false},
		{"empty id", "", "", false},
		{"post without digits", "post-abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PostID(tt.entryID)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
