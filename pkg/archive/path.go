package archive

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// maxSlugLen caps the slugged title part of a folder name
const maxSlugLen = 50

// FolderName derives the output directory name of a post from its publication
// time and title. The name starts with the minute-precision timestamp, the
// slugged title follows when there is one. Two posts sharing the same minute
// and title map to the same name, the later one wins.
func FolderName(ts time.Time, title string) string {
	prefix := ts.Format("2006-01-02-15-04")
	if strings.TrimSpace(title) == "" {
		return prefix
	}
	return prefix + "-" + titleSlug(title)
}

// Resolve returns the full output directory of a post, partitioned by year
func Resolve(root string, ts time.Time, title string) string {
	return filepath.Join(root, ts.Format("2006"), FolderName(ts, title))
}

// titleSlug makes a filesystem-safe slug of a title, hard-capped at
// maxSlugLen bytes
func titleSlug(title string) string {
	s := slug.Make(title)
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	return s
}
