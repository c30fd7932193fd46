package ai

import "fmt"

// Mode strings rendered into the prompt. The instrumental mode backs the
// reading-mode toggle; wording is load-bearing for the model.
const (
	ModeInstrumental = "INSTRUMENTAL / AMBIENT / SCORE ONLY (NO LYRICS)"
	ModeAny          = "ANY (Lyrics allowed if thematic)"
)

func ModeString(instrumentalOnly bool) string {
	if instrumentalOnly {
		return ModeInstrumental
	}
	return ModeAny
}

func buildPrompt(req GenerationRequest) string {
	return fmt.Sprintf(`Act as a Cinema Music Supervisor.
INPUT: %q
MODE: %s
COUNT: %d tracks.
HISTORY: %s

THE RULES OF THE MIX:
1. MASTER TONE (CRITICAL): Identify the "World Physics" (e.g., Sally Rooney = Quiet/Intimate). Do NOT break this tone.
2. QUALITY CONTROL: Prioritize "Hidden Gems" (Underground but Professional) or "Established Classics". Avoid low-quality trash.
3. THE "SMART PLATTER": Mix eras (Old vs New) but keep them emotionally consistent.

Output JSON:
{
  "vision": "Explain the Master Tone and why these tracks fit.",
  "search_queries": ["Artist - Song Title"],
  "lesson": "One takeaway about this specific vibe."
}`, req.Description, req.Mode, req.TrackCount, req.History)
}
