// Package resolver turns user-facing open.spotify.com URLs into catalog
// references.
package resolver

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies the type of catalog entity a URL points at.
type Kind string

const (
	KindTrack    Kind = "track"
	KindAlbum    Kind = "album"
	KindPlaylist Kind = "playlist"
)

// Ref is a resolved catalog reference.
type Ref struct {
	Kind Kind
	ID   string
}

// ErrNotCatalogURL is returned when the input does not look like an
// open.spotify.com entity URL.
var ErrNotCatalogURL = fmt.Errorf("resolver: not an open.spotify.com URL")

var urlPattern = regexp.MustCompile(`https://open\.spotify\.com/([a-z]+)/([a-zA-Z0-9]+)`)

// IsURL reports whether the input should be treated as a URL rather than
// a free-text query.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// Resolve parses an open.spotify.com URL into a catalog reference.
// Query parameters (e.g. ?si=...) are ignored. The kind is returned as
// found in the URL; callers decide which kinds they support.
func Resolve(rawURL string) (Ref, error) {
	m := urlPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return Ref{}, ErrNotCatalogURL
	}
	return Ref{Kind: Kind(m[1]), ID: m[2]}, nil
}
