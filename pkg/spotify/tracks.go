package spotify

import (
	"context"
	"fmt"
	"net/url"
)

// TrackService provides track operations for the Spotify Web API.
type TrackService struct {
	client *Client
}

// Get fetches a single track by its Spotify ID.
//
// Example:
//
//	track, err := client.Tracks().Get(ctx, "11dFghVXANMlKmJXsNCbNl")
func (s *TrackService) Get(ctx context.Context, id string) (*Track, error) {
	if id == "" {
		return nil, fmt.Errorf("spotify: track ID is required")
	}

	var track Track
	if err := s.client.getJSON(ctx, "/tracks/"+url.PathEscape(id), nil, &track); err != nil {
		return nil, err
	}

	return &track, nil
}

// AudioFeatures fetches the audio analysis summary for a track.
//
// The endpoint is not available for every track or every API client;
// callers typically treat a failure here as non-fatal.
func (s *TrackService) AudioFeatures(ctx context.Context, id string) (*AudioFeatures, error) {
	if id == "" {
		return nil, fmt.Errorf("spotify: track ID is required")
	}

	var features AudioFeatures
	if err := s.client.getJSON(ctx, "/audio-features/"+url.PathEscape(id), nil, &features); err != nil {
		return nil, err
	}

	return &features, nil
}
