package ytmusic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Search(t *testing.T) {
	t.Parallel()

	var seenQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		seenQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"resultType":"song","videoId":"abc123","title":"Blue in Green",
			 "artists":[{"name":"Miles Davis"},{"name":"Bill Evans"}],
			 "thumbnails":[{"url":"small.jpg","width":60,"height":60},{"url":"big.jpg","width":544,"height":544}],
			 "duration_seconds":337},
			{"resultType":"video","videoId":"def456","title":"Live Clip","views":"1.2M"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", nil)
	candidates, err := c.Search(context.Background(), "Miles Davis - Blue in Green")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if seenQuery != "Miles Davis - Blue in Green" {
		t.Fatalf("query: %q", seenQuery)
	}
	if len(candidates) != 2 {
		t.Fatalf("candidates: %d", len(candidates))
	}

	first := candidates[0]
	if first.ResultType != ResultTypeSong || first.VideoID != "abc123" {
		t.Fatalf("unexpected first candidate: %+v", first)
	}
	if first.ArtistName() != "Miles Davis" {
		t.Fatalf("artist: %q", first.ArtistName())
	}
	if first.ThumbnailURL() != "big.jpg" {
		t.Fatalf("thumbnail: %q", first.ThumbnailURL())
	}
	if first.DurationSeconds != 337 {
		t.Fatalf("duration: %d", first.DurationSeconds)
	}

	second := candidates[1]
	if second.DurationSeconds != 0 {
		t.Fatalf("expected unknown duration, got %d", second.DurationSeconds)
	}
	if second.Views != "1.2M" {
		t.Fatalf("views: %q", second.Views)
	}
}

func TestClient_SearchError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, err := c.Search(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

func TestCandidateDefaults(t *testing.T) {
	t.Parallel()

	c := Candidate{}
	if c.ArtistName() != "Unknown" {
		t.Fatalf("artist: %q", c.ArtistName())
	}
	if c.ThumbnailURL() != PlaceholderThumbnail {
		t.Fatalf("thumbnail: %q", c.ThumbnailURL())
	}

	c = Candidate{Artists: []Artist{{Name: ""}}}
	if c.ArtistName() != "Unknown" {
		t.Fatalf("blank artist: %q", c.ArtistName())
	}

	// Unsized entries keep the catalog's last-is-largest convention.
	c = Candidate{Thumbnails: []Thumbnail{{URL: "a.jpg"}, {URL: "b.jpg"}}}
	if c.ThumbnailURL() != "b.jpg" {
		t.Fatalf("unsized thumbnails: %q", c.ThumbnailURL())
	}
}
