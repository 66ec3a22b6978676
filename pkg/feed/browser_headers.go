package feed

import "net/http"

// addFeedHeaders decorates a feed request the way browsers do.
// blogspot serves feeds to browsers too and is less friendly to bare clients.
func addFeedHeaders(req *http.Request) {
	// blogger is atom-only, no need to advertise RSS
	req.Header.Set("Accept", "application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
}
