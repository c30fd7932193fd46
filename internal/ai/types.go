package ai

// MixPlan is the structured result of one generation call. Every field is
// optional on the wire; a plan with no search queries resolves to an
// empty mix rather than an error.
type MixPlan struct {
	Vision        string   `json:"vision"`
	SearchQueries []string `json:"search_queries"`
	Lesson        string   `json:"lesson"`
}

// GenerationRequest carries everything the model needs for one mix.
type GenerationRequest struct {
	Description string
	Mode        string
	TrackCount  int
	History     string
}
