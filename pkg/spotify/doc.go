// Package spotify provides a client library for the Spotify Web API.
//
// # Overview
//
// This package implements the catalog read surface of the Web API:
// authentication via the client-credentials flow, track and album lookup,
// track search, and paginated collection fetching for album and playlist
// track listings. It provides a type-safe API with context support and
// structured errors.
//
// # Quick Start
//
// Create an authenticated client with your application credentials:
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
// The returned client is an immutable session handle: the bearer token is
// obtained once and never refreshed. Authentication failures surface as
// *AuthError.
//
// # Catalog Operations
//
//	track, err := client.Tracks().Get(ctx, trackID)
//	album, err := client.Albums().Get(ctx, albumID)
//	results, err := client.Search().Tracks(ctx, "blinding lights", 5)
//
// # Pagination
//
// Album and playlist track listings are exposed by the API in bounded-size
// pages, each carrying an absolute URL to the next page. The service
// methods materialize the full listing:
//
//	tracks, err := client.Albums().Tracks(ctx, albumID)
//	entries, err := client.Playlists().Tracks(ctx, playlistID)
//
// Both follow the partial-result-on-failure policy: on error they return
// the items accumulated before the failing page alongside the error, never
// silently treating a truncated fetch as complete.
//
// For page-at-a-time consumption use the pager directly:
//
//	pager := client.Albums().TracksPager(albumID)
//	for pager.More() {
//	    page, err := pager.Next(ctx)
//	    if err != nil {
//	        break
//	    }
//	    // page.Items ...
//	}
//
// # Error Handling
//
// Non-2xx API responses are returned as *APIError with the HTTP status and
// the API's message:
//
//	var apiErr *spotify.APIError
//	if errors.As(err, &apiErr) && apiErr.NotFound() {
//	    // resource does not exist
//	}
//
// Network and decode failures are returned wrapped; nothing is retried.
//
// # Spotify Web API Documentation
//
// https://developer.spotify.com/documentation/web-api
package spotify
