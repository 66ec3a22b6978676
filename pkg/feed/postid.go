package feed

import "regexp"

// blogger entry ids look like "tag:blogger.com,1999:blog-8917.post-3141592"
var postIDRe = regexp.MustCompile(`post-(\d+)`)

// PostID extracts the numeric Blogger post id from an entry id tag.
// The second return is false when the id carries no post marker.
func PostID(entryID string) (string, bool) {
	m := postIDRe.FindStringSubmatch(entryID)
	if m == nil {
		return "", false
	}
	return m[1], true
}
