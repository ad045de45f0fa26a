package transcript

import (
	"fmt"
	"net/url"
	"strings"
)

var errNoVideoID = "cannot detect video ID in %q"

// ParseVideoID extracts the 11-character video identifier from a YouTube
// URL. Accepts the short form (youtu.be/<id>), the canonical form
// (youtube.com/watch?v=<id>), shorts/embed/live paths, and a bare id.
func ParseVideoID(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if isVideoID(arg) {
		return arg, nil
	}

	u, err := url.Parse(arg)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", arg, err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtu.be":
		if id := firstPathSegment(u.Path); isVideoID(id) {
			return id, nil
		}

	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if id := u.Query().Get("v"); isVideoID(id) {
			return id, nil
		}
		segs := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(segs) == 2 {
			switch segs[0] {
			case "shorts", "embed", "live":
				if isVideoID(segs[1]) {
					return segs[1], nil
				}
			}
		}
	}

	return "", fmt.Errorf(errNoVideoID, arg)
}

func isVideoID(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func firstPathSegment(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
