package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed/atom"

	"github.com/umputun/blogarc/pkg/domain"
)

// Parser fetches and parses a single page of a Blogger Atom feed.
// Blogger is Atom-only, and pagination metadata lives in link rel attributes
// the generic feed parsers throw away, so the atom-level parser is used.
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser creates a feed page parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Parse fetches the feed page at the given URL and converts it to a domain page
func (p *Parser) Parse(ctx context.Context, url string) (*domain.Page, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	af, err := (&atom.Parser{}).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	page := &domain.Page{Entries: make([]domain.Entry, 0, len(af.Entries))}
	for _, e := range af.Entries {
		entry := domain.Entry{
			ID:        e.ID,
			Title:     e.Title,
			Published: e.Published,
			Summary:   e.Summary,
		}
		if e.Content != nil {
			entry.Content = e.Content.Value
		}
		if len(e.Authors) > 0 {
			entry.Author = e.Authors[0].Name
		}
		page.Entries = append(page.Entries, entry)
	}

	// blogger tags the following page with a rel="next" link, first match wins
	for _, l := range af.Links {
		if l.Rel == "next" {
			page.NextURL = l.Href
			break
		}
	}

	return page, nil
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addFeedHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
