package output

import (
	"fmt"

	"vibecheck/internal/curator"
)

// RenderMix prints the full presentation bundle: vision, track cards,
// play-all link, lesson note.
func (o *Output) RenderMix(res curator.MixResult) {
	if res.Vision != "" {
		o.Print(o.Bold("Director's Vision"))
		o.Print("  " + res.Vision)
		o.Print("")
	}

	if len(res.Tracks) == 0 {
		o.Warn("No tracks could be validated for this mix.")
	}
	for i, track := range res.Tracks {
		o.Print(fmt.Sprintf("  %d. %s - %s", i+1, track.Artist, track.Title))
		o.Print(o.Gray("     art:    " + track.Thumbnail))
		o.Print(o.Gray("     listen: " + track.WatchURL()))
	}

	if url := res.PlayAllURL(); url != "" {
		o.Print("")
		o.Success("Play full mix: " + url)
	}
	if res.Lesson != "" {
		o.Print(o.Gray("Lesson learned: " + res.Lesson))
	}
}
