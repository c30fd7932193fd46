package curator

import (
	"context"
	"fmt"

	"vibecheck/internal/ytmusic"
)

// Searcher is the catalog collaborator. Exactly one call is made per
// query; no retries, no deduplication of repeated queries.
type Searcher interface {
	Search(ctx context.Context, query string) ([]ytmusic.Candidate, error)
}

// ResolveAll resolves each query to at most one track, preserving input
// order. Queries with no acceptable candidate are dropped without a gap.
// The returned video IDs parallel the tracks and feed the play-all link.
// A failed catalog call aborts the whole batch; a missed query never
// does.
func ResolveAll(ctx context.Context, searcher Searcher, queries []string) ([]Track, []string, error) {
	tracks := make([]Track, 0, len(queries))
	videoIDs := make([]string, 0, len(queries))

	for _, query := range queries {
		candidates, err := searcher.Search(ctx, query)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q: %v", ErrCatalog, query, err)
		}
		track, ok := SelectBestMatch(candidates, DefaultWindow)
		if !ok {
			continue
		}
		tracks = append(tracks, track)
		videoIDs = append(videoIDs, track.VideoID)
	}
	return tracks, videoIDs, nil
}
