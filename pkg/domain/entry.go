package domain

import "time"

// Entry represents a single raw item from a Blogger feed page, either a post
// or a comment depending on which feed it came from.
type Entry struct {
	ID        string // atom id tag, e.g. "tag:blogger.com,1999:blog-123.post-456"
	Title     string // posts only, comment titles are noise
	Author    string // meaningful for comments
	Published string // raw timestamp as emitted by the feed, may be malformed
	Content   string // structured content block value
	Summary   string // fallback when no content block is present
}

// Body returns the entry's HTML body, preferring the structured content block
// over the summary fallback.
func (e Entry) Body() string {
	if e.Content != "" {
		return e.Content
	}
	return e.Summary
}

// Page is one fetched batch of entries plus the pagination link to the next
// batch, empty on the last page.
type Page struct {
	Entries []Entry
	NextURL string
}

// Post is a dated blog post ready to be written out. A Post only exists once
// its published timestamp parsed successfully.
type Post struct {
	ID        string // numeric Blogger post id, empty when not extractable
	Title     string
	Published time.Time
	Content   string
	Comments  []Comment
}

// Comment is a single reader comment, kept in feed order.
type Comment struct {
	Author    string
	Published string // raw, formatted at render time when parseable
	Content   string
}
