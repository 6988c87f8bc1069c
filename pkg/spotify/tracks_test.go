package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestTrackService_Get(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tracks/11dFghVXANMlKmJXsNCbNl" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("expected bearer token header, got %q", auth)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "11dFghVXANMlKmJXsNCbNl",
			"name": "Cut To The Feeling",
			"artists": [{"id": "6sFIWsNpZYqfjUpaCgueju", "name": "Carly Rae Jepsen"}],
			"album": {"id": "0tGPJ0bkWOUmH7MEOR77qc", "name": "Cut To The Feeling", "release_date": "2017-05-26"},
			"duration_ms": 207959,
			"popularity": 63,
			"track_number": 1,
			"external_urls": {"spotify": "https://open.spotify.com/track/11dFghVXANMlKmJXsNCbNl"}
		}`)
	}))

	track, err := client.Tracks().Get(context.Background(), "11dFghVXANMlKmJXsNCbNl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if track.Name != "Cut To The Feeling" {
		t.Errorf("expected name Cut To The Feeling, got %q", track.Name)
	}
	if len(track.Artists) != 1 || track.Artists[0].Name != "Carly Rae Jepsen" {
		t.Errorf("unexpected artists: %v", track.Artists)
	}
	if track.Album.Name != "Cut To The Feeling" {
		t.Errorf("unexpected album: %v", track.Album)
	}
	if track.DurationMS != 207959 {
		t.Errorf("expected duration 207959, got %d", track.DurationMS)
	}
	if track.URL() != "https://open.spotify.com/track/11dFghVXANMlKmJXsNCbNl" {
		t.Errorf("unexpected URL %q", track.URL())
	}
}

func TestTrackService_GetNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"status":404,"message":"non existing id"}}`)
	}))

	_, err := client.Tracks().Get(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if !apiErr.NotFound() {
		t.Errorf("expected NotFound, got status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "non existing id" {
		t.Errorf("expected API message, got %q", apiErr.Message)
	}
}

func TestTrackService_GetEmptyID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	if _, err := client.Tracks().Get(context.Background(), ""); err == nil {
		t.Error("expected error for empty ID")
	}
}

func TestTrackService_AudioFeatures(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio-features/11dFghVXANMlKmJXsNCbNl" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"11dFghVXANMlKmJXsNCbNl","tempo":121.002,"energy":0.766,"danceability":0.709}`)
	}))

	features, err := client.Tracks().AudioFeatures(context.Background(), "11dFghVXANMlKmJXsNCbNl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if features.Tempo != 121.002 {
		t.Errorf("expected tempo 121.002, got %v", features.Tempo)
	}
	if features.Danceability != 0.709 {
		t.Errorf("expected danceability 0.709, got %v", features.Danceability)
	}
}
