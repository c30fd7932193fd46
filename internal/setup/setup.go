package setup

import "vibecheck/internal/output"

// PrintInstructions explains how to stand up the catalog search bridge
// when it cannot be reached. The client speaks to any ytmusicapi-
// compatible HTTP endpoint; a local proxy is the usual deployment.
func PrintInstructions(out *output.Output) {
	out.Warn("Could not reach the YouTube Music search bridge.")
	out.Print("")
	out.Print("vibecheck validates every track against a ytmusicapi-compatible")
	out.Print("search endpoint. To run one locally:")
	out.Print("")
	out.Print("  pip install ytmusicapi flask")
	out.Print("  # expose GET /search?q=... returning ytmusicapi search rows")
	out.Print("")
	out.Print("Then point vibecheck at it:")
	out.Print("")
	out.Print("  export YTMUSIC_API_URL=http://localhost:8080")
	out.Print("")
}
