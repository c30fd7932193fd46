package curator

import "strings"

// The queueing endpoint only exists on plain youtube.com; the format is
// fixed by the playback service and must not change.
const playAllBase = "http://www.youtube.com/watch_videos?video_ids="

// PlayAllURL builds the single batch-playback link for the whole mix,
// or "" when nothing resolved.
func PlayAllURL(videoIDs []string) string {
	if len(videoIDs) == 0 {
		return ""
	}
	return playAllBase + strings.Join(videoIDs, ",")
}
