package spotify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// SearchService provides catalog search for the Spotify Web API.
type SearchService struct {
	client *Client
}

const (
	// DefaultSearchLimit is the number of results requested when the
	// caller passes a limit of zero.
	DefaultSearchLimit = 5

	// maxSearchLimit is the largest page size the search endpoint accepts.
	maxSearchLimit = 50
)

// searchResponse is the wire shape of a track search result.
type searchResponse struct {
	Tracks Page[Track] `json:"tracks"`
}

// Tracks searches the catalog for tracks matching the query and returns
// the first page of results, at most limit entries.
func (s *SearchService) Tracks(ctx context.Context, query string, limit int) ([]Track, error) {
	if query == "" {
		return nil, fmt.Errorf("spotify: search query is required")
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))

	var resp searchResponse
	if err := s.client.getJSON(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	return resp.Tracks.Items, nil
}
