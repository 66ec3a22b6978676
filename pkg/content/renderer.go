package content

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/blogarc/pkg/domain"
)

// Renderer turns feed-provided HTML into markdown documents. The HTML is
// sanitized before conversion, script and style payloads never make it into
// the output.
type Renderer struct {
	sanitizer *bluemonday.Policy
	converter *md.Converter
}

// NewRenderer creates a renderer with the UGC sanitation policy and
// ATX-style headings
func NewRenderer() *Renderer {
	return &Renderer{
		sanitizer: bluemonday.UGCPolicy(),
		converter: md.NewConverter("", true, nil),
	}
}

// Markdown converts an HTML fragment to markdown. Empty input yields an
// empty string, so does a conversion failure.
func (r *Renderer) Markdown(html string) string {
	if html == "" {
		return ""
	}

	res, err := r.converter.ConvertString(r.sanitizer.Sanitize(html))
	if err != nil {
		lgr.Printf("[WARN] markdown conversion failed: %v", err)
		return ""
	}
	return res
}

// Post renders the index document of a post, an optional title heading
// followed by the body
func (r *Renderer) Post(post *domain.Post) string {
	var b strings.Builder
	if post.Title != "" {
		b.WriteString("# " + post.Title + "\n\n")
	}
	b.WriteString(strings.TrimSpace(r.Markdown(post.Content)))
	b.WriteString("\n")
	return b.String()
}

// Comments renders the comments document, one section per comment with a
// horizontal rule between consecutive sections
func (r *Renderer) Comments(comments []domain.Comment) string {
	var b strings.Builder
	b.WriteString("# Comments\n\n")

	for i, c := range comments {
		author := c.Author
		if author == "" {
			author = "Anonymous"
		}
		b.WriteString("## " + author + " - " + commentDate(c.Published) + "\n\n")
		b.WriteString(strings.TrimSpace(r.Markdown(c.Content)))
		b.WriteString("\n\n")
		if i < len(comments)-1 {
			b.WriteString("---\n\n")
		}
	}
	return b.String()
}

// commentDate formats a comment timestamp for the section heading, keeping
// the raw value when it refuses to parse
func commentDate(raw string) string {
	ts, err := domain.ParseTime(raw)
	if err != nil {
		return raw
	}
	return ts.Format("2006-01-02 15:04")
}
