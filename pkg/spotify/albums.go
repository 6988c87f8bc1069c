package spotify

import (
	"context"
	"fmt"
	"net/url"
)

// AlbumService provides album operations for the Spotify Web API.
type AlbumService struct {
	client *Client
}

// Get fetches a single album by its Spotify ID.
func (s *AlbumService) Get(ctx context.Context, id string) (*Album, error) {
	if id == "" {
		return nil, fmt.Errorf("spotify: album ID is required")
	}

	var album Album
	if err := s.client.getJSON(ctx, "/albums/"+url.PathEscape(id), nil, &album); err != nil {
		return nil, err
	}

	return &album, nil
}

// TracksPager returns a pager over the album's track listing, one page
// per request. Use Tracks to materialize the whole listing instead.
func (s *AlbumService) TracksPager(id string) *Pager[SimpleTrack] {
	return newPager[SimpleTrack](s.client, "/albums/"+url.PathEscape(id)+"/tracks")
}

// Tracks fetches the album's complete track listing across all pages,
// in album order.
//
// On failure the tracks retrieved before the failing page are returned
// together with the error.
func (s *AlbumService) Tracks(ctx context.Context, id string) ([]SimpleTrack, error) {
	if id == "" {
		return nil, fmt.Errorf("spotify: album ID is required")
	}
	return CollectAll(ctx, s.TracksPager(id))
}
