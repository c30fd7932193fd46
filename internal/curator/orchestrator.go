package curator

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"vibecheck/internal/ai"
	"vibecheck/internal/session"
)

// Generator is the language-model collaborator producing a mix plan.
type Generator interface {
	GenerateMixPlan(ctx context.Context, req ai.GenerationRequest) (ai.MixPlan, error)
}

// Curator drives one end-to-end curation: generation, per-query
// resolution, lesson memory.
type Curator struct {
	generator Generator
	searcher  Searcher
	logger    *log.Logger
}

func New(generator Generator, searcher Searcher, logger *log.Logger) *Curator {
	if logger == nil {
		logger = log.Default()
	}
	return &Curator{generator: generator, searcher: searcher, logger: logger}
}

// Request describes one user-submitted curation run.
type Request struct {
	Description      string
	InstrumentalOnly bool
	TrackCount       int
	History          *session.History
}

// MixResult is the full bundle handed to presentation.
type MixResult struct {
	Vision   string   `json:"vision"`
	Tracks   []Track  `json:"tracks"`
	VideoIDs []string `json:"videoIds"`
	Lesson   string   `json:"lesson,omitempty"`
}

// PlayAllURL is the aggregate playback link, "" when nothing resolved.
func (m MixResult) PlayAllURL() string {
	return PlayAllURL(m.VideoIDs)
}

// CurateMix runs the pipeline once: validate, generate, resolve. The
// lesson is appended to the request's history as soon as generation
// succeeds, before resolution; how many tracks later resolve does not
// affect it. Whole-stage failures abort with no partial result; queries
// that merely miss are dropped by the aggregator.
func (c *Curator) CurateMix(ctx context.Context, req Request) (MixResult, error) {
	if strings.TrimSpace(req.Description) == "" {
		return MixResult{}, ErrEmptyDescription
	}

	genReq := ai.GenerationRequest{
		Description: req.Description,
		Mode:        ai.ModeString(req.InstrumentalOnly),
		TrackCount:  req.TrackCount,
		History:     req.History.Render(),
	}
	plan, err := c.generator.GenerateMixPlan(ctx, genReq)
	if err != nil {
		return MixResult{}, fmt.Errorf("%w: %v", ErrGenerator, err)
	}
	if plan.Lesson != "" && req.History != nil {
		req.History.Append(plan.Lesson)
	}

	tracks, videoIDs, err := ResolveAll(ctx, c.searcher, plan.SearchQueries)
	if err != nil {
		return MixResult{}, err
	}

	c.logger.Info("mix curated",
		"queries", len(plan.SearchQueries), "resolved", len(tracks))

	return MixResult{
		Vision:   plan.Vision,
		Tracks:   tracks,
		VideoIDs: videoIDs,
		Lesson:   plan.Lesson,
	}, nil
}
