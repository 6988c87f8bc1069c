// Package spotify provides a client for the Spotify Web API.
//
// This package implements the client-credentials flow and the catalog
// read operations (tracks, albums, playlists, search). It is designed
// to be used as a standalone SDK.
//
// Example usage:
//
//	import "github.com/jfmyers9/spotcat/pkg/spotify"
//
//	client, err := spotify.Authenticate(ctx, spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	track, err := client.Tracks().Get(ctx, "11dFghVXANMlKmJXsNCbNl")
package spotify

import (
	"net/http"
)

// Config holds client configuration.
type Config struct {
	ClientID     string       // Required: Spotify application client ID
	ClientSecret string       // Required: Spotify application client secret
	HTTPClient   *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL      string       // Optional: Web API base URL (defaults to Spotify, used for testing)
	AccountsURL  string       // Optional: token endpoint URL (defaults to Spotify, used for testing)
	Logger       Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Spotify Web API operations.
//
// A Client is an immutable session handle: the bearer token is obtained
// once during Authenticate and is never mutated afterwards. Only the
// transport layer reads it. When the token expires the client must be
// replaced by calling Authenticate again; there is no refresh.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accountsURL string
	logger      Logger

	accessToken string

	tracks    *TrackService
	albums    *AlbumService
	playlists *PlaylistService
	search    *SearchService
}

const (
	// DefaultBaseURL is the default Spotify Web API endpoint.
	DefaultBaseURL = "https://api.spotify.com/v1"

	// DefaultAccountsURL is the default token endpoint for the
	// client-credentials exchange.
	DefaultAccountsURL = "https://accounts.spotify.com/api/token"
)

// Tracks returns the track service.
func (c *Client) Tracks() *TrackService {
	return c.tracks
}

// Albums returns the album service.
func (c *Client) Albums() *AlbumService {
	return c.albums
}

// Playlists returns the playlist service.
func (c *Client) Playlists() *PlaylistService {
	return c.playlists
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return c.search
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
