package spotify

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

func TestSearchService_Tracks(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		limit     int
		wantLimit string
	}{
		{name: "explicit limit", query: "blinding lights", limit: 10, wantLimit: "10"},
		{name: "default limit", query: "blinding lights", limit: 0, wantLimit: "5"},
		{name: "clamped limit", query: "blinding lights", limit: 200, wantLimit: "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				q := r.URL.Query()
				if got := q.Get("q"); got != tt.query {
					t.Errorf("expected q=%q, got %q", tt.query, got)
				}
				if got := q.Get("type"); got != "track" {
					t.Errorf("expected type=track, got %q", got)
				}
				if got := q.Get("limit"); got != tt.wantLimit {
					t.Errorf("expected limit=%s, got %s", tt.wantLimit, got)
				}

				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{
					"tracks": {
						"items": [
							{"id": "t1", "name": "Blinding Lights", "artists": [{"name": "The Weeknd"}], "popularity": 90},
							{"id": "t2", "name": "Blinding Lights - Remix", "artists": [{"name": "The Weeknd"}], "popularity": 70}
						],
						"next": null,
						"total": 2
					}
				}`)
			}))

			tracks, err := client.Search().Tracks(context.Background(), tt.query, tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(tracks) != 2 {
				t.Fatalf("expected 2 tracks, got %d", len(tracks))
			}
			if tracks[0].Name != "Blinding Lights" {
				t.Errorf("unexpected first result %q", tracks[0].Name)
			}
		})
	}
}

func TestSearchService_EmptyQuery(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	if _, err := client.Search().Tracks(context.Background(), "", 5); err == nil {
		t.Error("expected error for empty query")
	}
}
