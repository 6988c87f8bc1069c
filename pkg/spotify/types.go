package spotify

// Artist identifies a performing artist on a track or album.
type Artist struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// AlbumRef is the abbreviated album object embedded in a full track.
type AlbumRef struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	ReleaseDate  string            `json:"release_date"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// Track is a full track object as returned by the tracks and search
// endpoints.
type Track struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Artists      []Artist          `json:"artists"`
	Album        AlbumRef          `json:"album"`
	DurationMS   int               `json:"duration_ms"`
	Popularity   int               `json:"popularity"`
	TrackNumber  int               `json:"track_number"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// URL returns the track's open.spotify.com link, or "" when absent.
func (t Track) URL() string {
	return t.ExternalURLs["spotify"]
}

// SimpleTrack is the abbreviated track object returned by album track
// listings. It omits the album reference and popularity.
type SimpleTrack struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Artists      []Artist          `json:"artists"`
	DurationMS   int               `json:"duration_ms"`
	TrackNumber  int               `json:"track_number"`
	DiscNumber   int               `json:"disc_number"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// URL returns the track's open.spotify.com link, or "" when absent.
func (t SimpleTrack) URL() string {
	return t.ExternalURLs["spotify"]
}

// Album is a full album object.
type Album struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Artists      []Artist          `json:"artists"`
	ReleaseDate  string            `json:"release_date"`
	TotalTracks  int               `json:"total_tracks"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// URL returns the album's open.spotify.com link, or "" when absent.
func (a Album) URL() string {
	return a.ExternalURLs["spotify"]
}

// PlaylistEntry is one item of a playlist track listing. Track may be nil
// for entries whose underlying track is no longer available.
type PlaylistEntry struct {
	AddedAt string `json:"added_at"`
	Track   *Track `json:"track"`
}

// AudioFeatures describes the audio analysis summary of a track.
type AudioFeatures struct {
	ID           string  `json:"id"`
	Tempo        float64 `json:"tempo"`
	Energy       float64 `json:"energy"`
	Danceability float64 `json:"danceability"`
	Valence      float64 `json:"valence"`
	Acousticness float64 `json:"acousticness"`
	Key          int     `json:"key"`
	Mode         int     `json:"mode"`
	TimeSig      int     `json:"time_signature"`
}
