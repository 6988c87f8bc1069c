// Package render formats catalog entities for terminal display and
// plain-text export.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/spotcat/pkg/spotify"
	"github.com/mattn/go-runewidth"
)

// ListingPreview is the number of listing rows shown before the remainder
// is summarized.
const ListingPreview = 10

// Duration formats a millisecond duration as m:ss.
func Duration(ms int) string {
	return fmt.Sprintf("%d:%02d", ms/60000, (ms%60000)/1000)
}

// Artists joins artist names with commas.
func Artists(artists []spotify.Artist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// TrackSummary renders a multi-line human-readable track description.
func TrackSummary(t *spotify.Track) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", t.Name)
	fmt.Fprintf(&b, "  Artist:     %s\n", Artists(t.Artists))
	fmt.Fprintf(&b, "  Album:      %s\n", t.Album.Name)
	fmt.Fprintf(&b, "  Duration:   %s\n", Duration(t.DurationMS))
	fmt.Fprintf(&b, "  Popularity: %d/100\n", t.Popularity)
	fmt.Fprintf(&b, "  ID:         %s\n", t.ID)
	fmt.Fprintf(&b, "  URL:        %s", orNA(t.URL()))
	return b.String()
}

// AudioFeaturesSummary renders the audio analysis lines appended to a
// track summary.
func AudioFeaturesSummary(f *spotify.AudioFeatures) string {
	var b strings.Builder
	b.WriteString("  Audio features:\n")
	fmt.Fprintf(&b, "    Tempo (BPM):  %.1f\n", f.Tempo)
	fmt.Fprintf(&b, "    Energy:       %.2f/1.0\n", f.Energy)
	fmt.Fprintf(&b, "    Danceability: %.2f/1.0", f.Danceability)
	return b.String()
}

// AlbumSummary renders a multi-line human-readable album description.
func AlbumSummary(a *spotify.Album) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.Name)
	fmt.Fprintf(&b, "  Artist:       %s\n", Artists(a.Artists))
	fmt.Fprintf(&b, "  Release Date: %s\n", orNA(a.ReleaseDate))
	fmt.Fprintf(&b, "  Total Tracks: %d\n", a.TotalTracks)
	fmt.Fprintf(&b, "  ID:           %s\n", a.ID)
	fmt.Fprintf(&b, "  URL:          %s", orNA(a.URL()))
	return b.String()
}

// Line is one row of a track listing.
type Line struct {
	Name     string
	Artist   string
	Duration string
}

// SimpleTrackLine converts an album listing entry.
func SimpleTrackLine(t spotify.SimpleTrack) Line {
	return Line{Name: t.Name, Duration: Duration(t.DurationMS)}
}

// TrackLine converts a full track.
func TrackLine(t spotify.Track) Line {
	artist := ""
	if len(t.Artists) > 0 {
		artist = t.Artists[0].Name
	}
	return Line{Name: t.Name, Artist: artist, Duration: Duration(t.DurationMS)}
}

// EntryLines converts playlist entries, skipping those whose track is no
// longer available.
func EntryLines(entries []spotify.PlaylistEntry) []Line {
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		if e.Track == nil {
			continue
		}
		lines = append(lines, TrackLine(*e.Track))
	}
	return lines
}

// Listing renders a numbered track listing. The first ListingPreview rows
// are shown with names padded to a common display width; any remainder is
// summarized as a single trailing line.
func Listing(lines []Line) string {
	shown := lines
	if len(shown) > ListingPreview {
		shown = shown[:ListingPreview]
	}

	nameWidth := 0
	for _, l := range shown {
		if w := runewidth.StringWidth(l.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for i, l := range shown {
		name := l.Name + strings.Repeat(" ", nameWidth-runewidth.StringWidth(l.Name))
		if l.Artist != "" {
			fmt.Fprintf(&b, "  %2d. %s  %s (%s)", i+1, name, l.Artist, l.Duration)
		} else {
			fmt.Fprintf(&b, "  %2d. %s  (%s)", i+1, name, l.Duration)
		}
		if i < len(shown)-1 {
			b.WriteByte('\n')
		}
	}

	if rest := len(lines) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n  ... and %d more tracks", rest)
	}

	return b.String()
}

// WriteTracks writes a numbered plain-text dump of tracks, one block per
// track, suitable for saving to a file.
func WriteTracks(w io.Writer, tracks []spotify.Track) error {
	if _, err := fmt.Fprintf(w, "SPOTIFY TRACKS\n%s\n\n", strings.Repeat("=", 80)); err != nil {
		return err
	}

	for i, t := range tracks {
		_, err := fmt.Fprintf(w, "%d. %s\n  Artist: %s\n  Album: %s\n  URL: %s\n  ID: %s\n\n",
			i+1, t.Name, Artists(t.Artists), t.Album.Name, orNA(t.URL()), t.ID)
		if err != nil {
			return err
		}
	}

	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
