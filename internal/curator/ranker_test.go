package curator

import (
	"testing"

	"vibecheck/internal/ytmusic"
)

func song(id, title, artist string, duration int) ytmusic.Candidate {
	return ytmusic.Candidate{
		ResultType:      ytmusic.ResultTypeSong,
		VideoID:         id,
		Title:           title,
		Artists:         []ytmusic.Artist{{Name: artist}},
		DurationSeconds: duration,
	}
}

func video(id, title, views string, duration int) ytmusic.Candidate {
	return ytmusic.Candidate{
		ResultType:      ytmusic.ResultTypeVideo,
		VideoID:         id,
		Title:           title,
		Views:           views,
		DurationSeconds: duration,
	}
}

func TestSelectBestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []ytmusic.Candidate
		window     int
		wantID     string
		wantMatch  bool
	}{
		{
			name:      "empty list",
			window:    5,
			wantMatch: false,
		},
		{
			name: "song accepted without popularity check",
			candidates: []ytmusic.Candidate{
				song("s1", "Track", "Artist", 200),
			},
			window:    5,
			wantID:    "s1",
			wantMatch: true,
		},
		{
			name: "first song beats later higher-viewed video",
			candidates: []ytmusic.Candidate{
				video("v1", "No Views Clip", "", 300),
				song("s1", "Track A", "Artist", 240),
				video("v2", "Popular Clip", "2M views", 240),
			},
			window:    5,
			wantID:    "s1",
			wantMatch: true,
		},
		{
			name: "video needs a magnitude marker",
			candidates: []ytmusic.Candidate{
				video("v1", "Small", "500 views", 240),
				video("v2", "Big", "10K views", 240),
			},
			window:    5,
			wantID:    "v2",
			wantMatch: true,
		},
		{
			name: "billions marker qualifies",
			candidates: []ytmusic.Candidate{
				video("v1", "Huge", "1.1B views", 240),
			},
			window:    5,
			wantID:    "v1",
			wantMatch: true,
		},
		{
			name: "lowercase marker does not qualify",
			candidates: []ytmusic.Candidate{
				video("v1", "Odd Label", "10k views", 240),
			},
			window:    5,
			wantMatch: false,
		},
		{
			name: "short song rejected regardless of type",
			candidates: []ytmusic.Candidate{
				song("s1", "Skit", "Artist", 45),
				song("s2", "Full Track", "Artist", 180),
			},
			window:    5,
			wantID:    "s2",
			wantMatch: true,
		},
		{
			name: "short popular video rejected",
			candidates: []ytmusic.Candidate{
				video("v1", "Teaser", "5M views", 30),
			},
			window:    5,
			wantMatch: false,
		},
		{
			name: "unknown duration passes the gate",
			candidates: []ytmusic.Candidate{
				song("s1", "No Duration", "Artist", 0),
			},
			window:    5,
			wantID:    "s1",
			wantMatch: true,
		},
		{
			name: "other result types skipped",
			candidates: []ytmusic.Candidate{
				{ResultType: "album", VideoID: "a1"},
				{ResultType: "playlist", VideoID: "p1"},
				song("s1", "Track", "Artist", 200),
			},
			window:    5,
			wantID:    "s1",
			wantMatch: true,
		},
		{
			name: "never looks past the window",
			candidates: []ytmusic.Candidate{
				video("v1", "a", "", 240),
				video("v2", "b", "", 240),
				video("v3", "c", "", 240),
				video("v4", "d", "", 240),
				video("v5", "e", "", 240),
				song("s6", "Sixth", "Artist", 240),
			},
			window:    5,
			wantMatch: false,
		},
		{
			name: "accepted candidate without id is a miss",
			candidates: []ytmusic.Candidate{
				song("", "Broken Row", "Artist", 200),
			},
			window:    5,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := SelectBestMatch(tt.candidates, tt.window)
			if ok != tt.wantMatch {
				t.Fatalf("match=%v, want %v (got %+v)", ok, tt.wantMatch, got)
			}
			if ok && got.VideoID != tt.wantID {
				t.Fatalf("selected %q, want %q", got.VideoID, tt.wantID)
			}
		})
	}
}

func TestSelectBestMatchDefaults(t *testing.T) {
	t.Parallel()

	got, ok := SelectBestMatch([]ytmusic.Candidate{
		{ResultType: ytmusic.ResultTypeSong, VideoID: "s1", Title: "Bare Row"},
	}, DefaultWindow)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Artist != "Unknown" {
		t.Fatalf("artist: %q", got.Artist)
	}
	if got.Thumbnail != ytmusic.PlaceholderThumbnail {
		t.Fatalf("thumbnail: %q", got.Thumbnail)
	}
	if got.WatchURL() != "https://music.youtube.com/watch?v=s1" {
		t.Fatalf("watch url: %q", got.WatchURL())
	}
}
