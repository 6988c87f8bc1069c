package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jfmyers9/spotcat/internal/history"
	"github.com/jfmyers9/spotcat/internal/render"
	"github.com/jfmyers9/spotcat/internal/resolver"
	"github.com/jfmyers9/spotcat/pkg/spotify"
	"github.com/rs/zerolog"
)

// lookupURL resolves a catalog URL, fetches the entity it names, prints a
// summary, and returns the retrieved tracks for optional saving.
//
// Collection fetches follow the partial-result policy: whatever prefix was
// retrieved before a failure is shown and returned, alongside a warning.
func lookupURL(ctx context.Context, client *spotify.Client, store *history.Store, logger zerolog.Logger, input string) ([]spotify.Track, error) {
	ref, err := resolver.Resolve(input)
	if err != nil {
		return nil, err
	}

	var (
		tracks   []spotify.Track
		fetchErr error
	)

	switch ref.Kind {
	case resolver.KindTrack:
		tracks, fetchErr = showTrack(ctx, client, ref.ID)
	case resolver.KindAlbum:
		tracks, fetchErr = showAlbum(ctx, client, ref.ID)
	case resolver.KindPlaylist:
		tracks, fetchErr = showPlaylist(ctx, client, ref.ID)
	default:
		return nil, fmt.Errorf("unsupported catalog type %q", ref.Kind)
	}

	if fetchErr != nil && len(tracks) == 0 {
		return nil, fetchErr
	}
	if fetchErr != nil {
		fmt.Printf("\nwarning: track listing incomplete: %v\n", fetchErr)
	}

	recordLookup(store, logger, history.Lookup{
		Kind:      string(ref.Kind),
		SpotifyID: ref.ID,
		Query:     input,
		Items:     len(tracks),
		Partial:   fetchErr != nil,
	})

	return tracks, nil
}

// searchTracks runs a free-text track search, prints each result, and
// returns the results for optional saving.
func searchTracks(ctx context.Context, client *spotify.Client, store *history.Store, logger zerolog.Logger, query string, limit int) ([]spotify.Track, error) {
	results, err := client.Search().Tracks(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	recordLookup(store, logger, history.Lookup{
		Kind:  "search",
		Query: query,
		Items: len(results),
	})

	if len(results) == 0 {
		fmt.Println("No tracks found.")
		return nil, nil
	}

	for i, track := range results {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(render.TrackSummary(&track))
	}

	return results, nil
}

// showTrack prints a single track with its audio features.
func showTrack(ctx context.Context, client *spotify.Client, id string) ([]spotify.Track, error) {
	track, err := client.Tracks().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fmt.Println(render.TrackSummary(track))

	// Audio features are a bonus; the endpoint is not available to every
	// API client.
	if features, err := client.Tracks().AudioFeatures(ctx, id); err == nil {
		fmt.Println(render.AudioFeaturesSummary(features))
	}

	return []spotify.Track{*track}, nil
}

// showAlbum prints an album summary followed by its full track listing.
func showAlbum(ctx context.Context, client *spotify.Client, id string) ([]spotify.Track, error) {
	album, err := client.Albums().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fmt.Println(render.AlbumSummary(album))

	tracks, fetchErr := client.Albums().Tracks(ctx, id)
	if len(tracks) > 0 {
		lines := make([]render.Line, len(tracks))
		for i, t := range tracks {
			lines[i] = render.SimpleTrackLine(t)
		}
		fmt.Printf("\n  Tracks (%d total):\n", len(tracks))
		fmt.Println(render.Listing(lines))
	}

	return albumTracks(album, tracks), fetchErr
}

// showPlaylist prints a playlist's full track listing.
func showPlaylist(ctx context.Context, client *spotify.Client, id string) ([]spotify.Track, error) {
	entries, fetchErr := client.Playlists().Tracks(ctx, id)

	if len(entries) > 0 {
		fmt.Printf("  Tracks (%d total):\n", len(entries))
		fmt.Println(render.Listing(render.EntryLines(entries)))
	}

	savable := make([]spotify.Track, 0, len(entries))
	for _, e := range entries {
		if e.Track != nil {
			savable = append(savable, *e.Track)
		}
	}

	return savable, fetchErr
}

// albumTracks widens an album's simplified track listing into full tracks
// carrying the album reference, for saving.
func albumTracks(album *spotify.Album, tracks []spotify.SimpleTrack) []spotify.Track {
	ref := spotify.AlbumRef{
		ID:           album.ID,
		Name:         album.Name,
		ReleaseDate:  album.ReleaseDate,
		ExternalURLs: album.ExternalURLs,
	}

	out := make([]spotify.Track, len(tracks))
	for i, t := range tracks {
		out[i] = spotify.Track{
			ID:           t.ID,
			Name:         t.Name,
			Artists:      t.Artists,
			Album:        ref,
			DurationMS:   t.DurationMS,
			TrackNumber:  t.TrackNumber,
			ExternalURLs: t.ExternalURLs,
		}
	}
	return out
}

// recordLookup appends to the history store; failures are logged, never fatal.
func recordLookup(store *history.Store, logger zerolog.Logger, l history.Lookup) {
	if store == nil {
		return
	}
	if _, err := store.Record(context.Background(), l); err != nil {
		logger.Warn().Err(err).Msg("Failed to record lookup history")
	}
}

// saveTracks writes a plain-text track dump to path.
func saveTracks(path string, tracks []spotify.Track) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := render.WriteTracks(f, tracks); err != nil {
		return fmt.Errorf("failed to write tracks: %w", err)
	}

	fmt.Printf("\nSaved %d tracks to %s\n", len(tracks), path)
	return nil
}
