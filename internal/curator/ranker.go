package curator

import (
	"strings"

	"vibecheck/internal/ytmusic"
)

const (
	// DefaultWindow bounds how many leading candidates are examined per
	// query. Anything the catalog ranks below this never gets a look.
	DefaultWindow = 5

	// minTrackSeconds filters out skits, intros and other short-form
	// noise. Unknown durations pass the gate.
	minTrackSeconds = 60
)

// Track is one resolved playlist entry.
type Track struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Thumbnail string `json:"thumbnail"`
	VideoID   string `json:"videoId"`
}

// WatchURL is the per-track playback link.
func (t Track) WatchURL() string {
	return "https://music.youtube.com/watch?v=" + t.VideoID
}

// SelectBestMatch scans the first windowSize candidates in catalog order
// and returns the first one passing the VIP filter:
//
//  1. Known durations under a minute are rejected.
//  2. Official "song" results are always trusted.
//  3. User "video" results need a views label with a K/M/B magnitude
//     marker; anything below thousands of views is noise.
//  4. Every other result type is skipped.
//
// First qualifying candidate wins, no backtracking. An exhausted window
// is a miss, not an error.
func SelectBestMatch(candidates []ytmusic.Candidate, windowSize int) (Track, bool) {
	window := candidates
	if windowSize >= 0 && len(window) > windowSize {
		window = window[:windowSize]
	}

	for _, c := range window {
		if c.DurationSeconds > 0 && c.DurationSeconds < minTrackSeconds {
			continue
		}
		switch c.ResultType {
		case ytmusic.ResultTypeSong:
			return trackFrom(c)
		case ytmusic.ResultTypeVideo:
			if hasViewMagnitude(c.Views) {
				return trackFrom(c)
			}
		}
	}
	return Track{}, false
}

// hasViewMagnitude matches the catalog's own label formatting, so the
// check is case-sensitive on purpose.
func hasViewMagnitude(views string) bool {
	return strings.Contains(views, "K") ||
		strings.Contains(views, "M") ||
		strings.Contains(views, "B")
}

// trackFrom converts an accepted candidate. A candidate without a video
// ID cannot become a playable reference, so acceptance degrades to a
// miss for the query.
func trackFrom(c ytmusic.Candidate) (Track, bool) {
	if c.VideoID == "" {
		return Track{}, false
	}
	return Track{
		Title:     c.Title,
		Artist:    c.ArtistName(),
		Thumbnail: c.ThumbnailURL(),
		VideoID:   c.VideoID,
	}, true
}
