package spotify

import (
	"context"
	"fmt"
	"net/url"
)

// PlaylistService provides playlist operations for the Spotify Web API.
type PlaylistService struct {
	client *Client
}

// TracksPager returns a pager over the playlist's track listing, one page
// per request. Use Tracks to materialize the whole listing instead.
func (s *PlaylistService) TracksPager(id string) *Pager[PlaylistEntry] {
	return newPager[PlaylistEntry](s.client, "/playlists/"+url.PathEscape(id)+"/tracks")
}

// Tracks fetches the playlist's complete track listing across all pages,
// in playlist order. Entries whose underlying track has been removed from
// the catalog carry a nil Track and are retained in place.
//
// On failure the entries retrieved before the failing page are returned
// together with the error.
func (s *PlaylistService) Tracks(ctx context.Context, id string) ([]PlaylistEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("spotify: playlist ID is required")
	}
	return CollectAll(ctx, s.TracksPager(id))
}
