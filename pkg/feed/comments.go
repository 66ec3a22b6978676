package feed

import (
	"context"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/blogarc/pkg/domain"
)

// Comments fetches per-post comment feeds. Failures never propagate, comments
// are strictly optional and a broken comment feed must not sink the post.
type Comments struct {
	parser  PageParser
	blogURL string
}

// NewComments creates a comment feed fetcher for the given blog host
func NewComments(parser PageParser, blogURL string) *Comments {
	return &Comments{parser: parser, blogURL: blogURL}
}

// Fetch returns the comments of a post in feed order. An empty postID means
// the post id was not extractable and no request is made. Any fetch or parse
// error yields an empty result.
func (c *Comments) Fetch(ctx context.Context, postID string) []domain.Comment {
	if postID == "" {
		return nil
	}

	page, err := c.parser.Parse(ctx, CommentsURL(c.blogURL, postID))
	if err != nil {
		lgr.Printf("[WARN] comments skipped for post %s: %v", postID, err)
		return nil
	}

	comments := make([]domain.Comment, 0, len(page.Entries))
	for _, e := range page.Entries {
		comments = append(comments, domain.Comment{
			Author:    e.Author,
			Published: e.Published,
			Content:   e.Body(),
		})
	}
	return comments
}
