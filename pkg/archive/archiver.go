package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/blogarc/pkg/domain"
	"github.com/umputun/blogarc/pkg/feed"
)

//go:generate moq -out mocks/entry_source.go -pkg mocks -skip-ensure -fmt goimports . EntrySource
//go:generate moq -out mocks/comment_source.go -pkg mocks -skip-ensure -fmt goimports . CommentSource
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer

// EntrySource walks the posts feed and returns every entry it can reach
type EntrySource interface {
	FetchAll(ctx context.Context, startURL string) []domain.Entry
}

// CommentSource fetches the comments of a single post
type CommentSource interface {
	Fetch(ctx context.Context, postID string) []domain.Comment
}

// Renderer produces the markdown documents of a post
type Renderer interface {
	Post(post *domain.Post) string
	Comments(comments []domain.Comment) string
}

// Archiver drives the pipeline: walk the posts feed, then write each post as
// a directory with an index document and, when the post has any, a comments
// document.
type Archiver struct {
	entries   EntrySource
	comments  CommentSource
	renderer  Renderer
	outputDir string
	delay     time.Duration
}

// Params contains dependencies and settings for creating an Archiver
type Params struct {
	Entries   EntrySource
	Comments  CommentSource
	Renderer  Renderer
	OutputDir string
	Delay     time.Duration
}

// NewArchiver creates an archiver writing under params.OutputDir
func NewArchiver(params Params) *Archiver {
	return &Archiver{
		entries:   params.Entries,
		comments:  params.Comments,
		renderer:  params.Renderer,
		outputDir: params.OutputDir,
		delay:     params.Delay,
	}
}

// Run archives every post of the feed starting at startURL and returns
// the number of posts written. A failure on one post is logged and the batch
// moves on, only an unusable output directory is fatal.
func (a *Archiver) Run(ctx context.Context, startURL string) (int, error) {
	lgr.Printf("[INFO] fetching all posts from the blog")
	entries := a.entries.FetchAll(ctx, startURL)
	lgr.Printf("[INFO] total posts found: %d", len(entries))

	if len(entries) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(a.outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory %s: %w", a.outputDir, err)
	}

	written := 0
	for i, entry := range entries {
		if ctx.Err() != nil {
			lgr.Printf("[WARN] archiving canceled, %d of %d posts done", written, len(entries))
			break
		}

		lgr.Printf("[INFO] [%d/%d] %s", i+1, len(entries), displayTitle(entry.Title))
		dir, err := a.processPost(ctx, entry)
		if err != nil {
			lgr.Printf("[WARN] post skipped: %v", err)
			continue
		}
		lgr.Printf("[INFO]   -> %s", dir)
		written++
	}

	return written, nil
}

// processPost writes one post to disk and returns its directory. The index
// document is written before comments are even requested, a dead comment
// feed leaves the post itself intact.
func (a *Archiver) processPost(ctx context.Context, entry domain.Entry) (string, error) {
	title := strings.TrimSpace(entry.Title)

	ts, err := domain.ParseTime(entry.Published)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", entry.Published, err)
	}

	post := &domain.Post{Title: title, Published: ts, Content: entry.Body()}

	dir := Resolve(a.outputDir, ts, title)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "index.md"), []byte(a.renderer.Post(post)), 0o644); err != nil {
		return "", fmt.Errorf("write index: %w", err)
	}

	id, ok := feed.PostID(entry.ID)
	if !ok {
		return dir, nil
	}
	post.ID = id

	sleep(ctx, a.delay)
	post.Comments = a.comments.Fetch(ctx, id)
	if len(post.Comments) == 0 {
		return dir, nil
	}

	if err := os.WriteFile(filepath.Join(dir, "comments.md"), []byte(a.renderer.Comments(post.Comments)), 0o644); err != nil {
		return "", fmt.Errorf("write comments: %w", err)
	}

	return dir, nil
}

// displayTitle trims a title for the progress line
func displayTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "(untitled)"
	}
	if r := []rune(title); len(r) > 50 {
		return string(r[:50])
	}
	return title
}

// sleep waits for d or until the context ends, whichever comes first
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
