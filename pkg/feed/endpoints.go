package feed

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// postsPath is the canonical Blogger posts feed location under a blog host
	postsPath = "/feeds/posts/default"

	// DefaultPageSize is the number of posts requested per feed page
	DefaultPageSize = 25

	// MaxPageSize is the largest page blogger serves in one response
	MaxPageSize = 500
)

// PostsURL constructs the first posts feed page URL for a blog host.
// Following pages come from the feed's own rel="next" links, the page size
// only seeds the walk.
func PostsURL(blogURL string, pageSize int) string {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	} else if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	params := url.Values{}
	params.Set("max-results", strconv.Itoa(pageSize))

	return fmt.Sprintf("%s%s?%s", strings.TrimRight(blogURL, "/"), postsPath, params.Encode())
}

// CommentsURL constructs the per-post comments feed URL for a blog host
func CommentsURL(blogURL, postID string) string {
	return fmt.Sprintf("%s/feeds/%s/comments/default", strings.TrimRight(blogURL, "/"), postID)
}
