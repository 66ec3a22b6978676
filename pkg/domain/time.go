package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTime parses a feed timestamp. Blogger emits RFC3339 with sub-second
// precision and a zone offset, but the field is free text as far as the feed
// contract goes, so anything dateparse can't recognize is malformed.
// The zone offset from the feed is preserved in the result.
func ParseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	ts, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	return ts, nil
}
