package feed

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/blogarc/pkg/domain"
)

//go:generate moq -out mocks/page_parser.go -pkg mocks -skip-ensure -fmt goimports . PageParser

// PageParser fetches and parses one feed page
type PageParser interface {
	Parse(ctx context.Context, pageURL string) (*domain.Page, error)
}

// defaultMaxPages caps the walk against feeds that never run out of next links
const defaultMaxPages = 1000

// Pager walks a paginated feed page by page, following rel="next" links until
// the feed stops handing them out.
type Pager struct {
	parser   PageParser
	delay    time.Duration
	maxPages int
}

// NewPager creates a pagination walker. The delay is slept between consecutive
// page fetches, never after the last one.
func NewPager(parser PageParser, delay time.Duration, maxPages int) *Pager {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &Pager{parser: parser, delay: delay, maxPages: maxPages}
}

// FetchAll collects entries from every page starting at startURL, in feed
// order. It never fails upward: a fetch error ends the walk and whatever
// accumulated so far is returned. Termination is a missing next link, a fetch
// error, the page cap, a repeated next URL or context cancellation.
func (p *Pager) FetchAll(ctx context.Context, startURL string) []domain.Entry {
	var entries []domain.Entry
	seen := map[string]struct{}{}

	url := startURL
	for pages := 0; url != ""; pages++ {
		if pages >= p.maxPages {
			lgr.Printf("[WARN] page cap %d reached, stopping pagination", p.maxPages)
			break
		}
		if _, ok := seen[url]; ok {
			lgr.Printf("[WARN] pagination loop detected at %s, stopping", url)
			break
		}
		seen[url] = struct{}{}

		lgr.Printf("[INFO] fetching %s", url)
		page, err := p.parser.Parse(ctx, url)
		if err != nil {
			lgr.Printf("[WARN] pagination stopped: %v", err)
			break
		}

		entries = append(entries, page.Entries...)
		lgr.Printf("[INFO] found %d entries (total: %d)", len(page.Entries), len(entries))

		url = page.NextURL
		if url != "" && !sleep(ctx, p.delay) {
			lgr.Printf("[WARN] pagination canceled, returning %d entries", len(entries))
			break
		}
	}

	return entries
}

// sleep waits for d unless the context ends first, reports whether the full
// delay elapsed
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
