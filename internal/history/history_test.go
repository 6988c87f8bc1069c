package history

import (
	"context"
	"testing"
	"time"
)

// createTestStore creates an in-memory SQLite store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	lookups := []Lookup{
		{Kind: "track", SpotifyID: "t1", Query: "https://open.spotify.com/track/t1", Items: 1, CreatedAt: base},
		{Kind: "search", Query: "blinding lights", Items: 5, CreatedAt: base.Add(time.Minute)},
		{Kind: "playlist", SpotifyID: "p1", Query: "https://open.spotify.com/playlist/p1", Items: 42, Partial: true, CreatedAt: base.Add(2 * time.Minute)},
	}

	for _, l := range lookups {
		id, err := store.Record(ctx, l)
		if err != nil {
			t.Fatalf("failed to record lookup: %v", err)
		}
		if id == 0 {
			t.Error("expected non-zero row id")
		}
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("failed to list lookups: %v", err)
	}

	if len(recent) != 3 {
		t.Fatalf("expected 3 lookups, got %d", len(recent))
	}

	// Most recent first.
	if recent[0].Kind != "playlist" || recent[2].Kind != "track" {
		t.Errorf("unexpected order: %v, %v, %v", recent[0].Kind, recent[1].Kind, recent[2].Kind)
	}
	if !recent[0].Partial {
		t.Error("expected partial flag to round-trip")
	}
	if recent[0].Items != 42 {
		t.Errorf("expected 42 items, got %d", recent[0].Items)
	}
	if recent[1].SpotifyID != "" {
		t.Errorf("expected empty spotify ID for search, got %q", recent[1].SpotifyID)
	}
}

func TestRecentLimit(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Record(ctx, Lookup{Kind: "track", Query: "q", Items: 1}); err != nil {
			t.Fatalf("failed to record lookup: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("failed to list lookups: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 lookups, got %d", len(recent))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count lookups: %v", err)
	}
	if count != 5 {
		t.Errorf("expected count 5, got %d", count)
	}
}

func TestRecentEmpty(t *testing.T) {
	store := createTestStore(t)

	recent, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("failed to list lookups: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("expected no lookups, got %d", len(recent))
	}
}
