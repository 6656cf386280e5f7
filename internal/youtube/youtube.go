// Package youtube recognises YouTube video links and looks up video metadata
package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

const watchURL = "https://www.youtube.com/watch?v="

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// pathPrefixes are the path forms that carry the video id as the next
// segment.
var pathPrefixes = []string{"v", "embed", "shorts"}

// ExtractID returns the 11 character video id carried by a YouTube link. It
// understands watch links, youtu.be short links and the /v/, /embed/ and
// /shorts/ forms. Anything else yields an empty string.
func ExtractID(locator string) string {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return ""
	}

	if !strings.Contains(locator, "://") {
		locator = "https://" + locator
	}

	u, err := url.Parse(locator)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")

	segments := strings.FieldsFunc(u.Path, func(r rune) bool {
		return r == '/'
	})

	var id string

	switch host {
	case "youtu.be":
		if len(segments) > 0 {
			id = segments[0]
		}
	case "youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
			break
		}

		if len(segments) > 1 {
			for _, p := range pathPrefixes {
				if segments[0] == p {
					id = segments[1]
					break
				}
			}
		}
	}

	if !idPattern.MatchString(id) {
		return ""
	}

	return id
}

// WatchURL returns the canonical watch link for a video id.
func WatchURL(id string) string {
	return watchURL + id
}
