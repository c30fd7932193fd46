package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"vibecheck/internal/ai"
	"vibecheck/internal/config"
	"vibecheck/internal/curator"
	"vibecheck/internal/output"
	"vibecheck/internal/session"
	"vibecheck/internal/setup"
	"vibecheck/internal/ytmusic"
)

const version = "1.0.0"

// Track count bounds mirror the submission form's slider.
const (
	minTrackCount = 3
	maxTrackCount = 40
)

type rootOptions struct {
	Instrumental bool
	Count        int
	Session      string
	JSON         bool
	Plain        bool
	Quiet        bool
	Verbose      bool
	NoColor      bool
	NoInput      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "vibecheck [description]",
		Short:         "Curate a validated YouTube Music mix for a scene or book",
		Long:          "vibecheck turns a free-text scene or book description into a themed,\nAPI-validated YouTube Music mix with a single play-all link.",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurate(cmd.Context(), opts, args)
		},
	}
	bindRootFlags(cmd.Flags(), opts)
	cmd.AddCommand(newSessionsCommand())
	return cmd
}

func bindRootFlags(fs *pflag.FlagSet, opts *rootOptions) {
	fs.BoolVarP(&opts.Instrumental, "instrumental", "i", false, "Reading mode: instrumental/ambient/score tracks only")
	fs.IntVarP(&opts.Count, "count", "n", 0, fmt.Sprintf("Tracks to request (%d-%d)", minTrackCount, maxTrackCount))
	fs.StringVarP(&opts.Session, "session", "s", "", "Session ID for lesson memory (new session when empty)")
	fs.BoolVar(&opts.JSON, "json", false, "Emit the mix result as JSON")
	fs.BoolVar(&opts.Plain, "plain", false, "Disable colors and decorations")
	fs.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress progress output")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&opts.NoInput, "no-input", false, "Never read the description from stdin")
	fs.SortFlags = false
}

func runCurate(ctx context.Context, opts *rootOptions, args []string) error {
	cfg := config.Load()
	logger := newLogger(opts.Verbose)
	out := output.New(output.Options{
		JSON:    opts.JSON,
		Plain:   opts.Plain,
		Quiet:   opts.Quiet,
		Verbose: opts.Verbose,
		NoColor: opts.NoColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb",
	})

	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" && !opts.NoInput && !term.IsTerminal(int(os.Stdin.Fd())) {
		description = readDescriptionFromStdin()
	}
	if description == "" {
		return curator.ErrEmptyDescription
	}

	if cfg.GroqAPIKey == "" {
		out.Error("GROQ_API_KEY is not set.")
		return fmt.Errorf("missing groq api key")
	}

	count := opts.Count
	if count == 0 {
		count = cfg.DefaultCount
	}
	count = clampCount(count)

	store := session.NewFileStore(sessionsPath(cfg))
	sessionID := opts.Session
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	history := store.History(sessionID)

	mixer := curator.New(
		ai.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel, logger),
		ytmusic.NewClient(cfg.YTMusicURL, logger),
		logger,
	)

	out.Info(out.Gray("Session: " + sessionID))
	out.Info("Synthesizing eras & validating IDs...")

	res, err := mixer.CurateMix(ctx, curator.Request{
		Description:      description,
		InstrumentalOnly: opts.Instrumental,
		TrackCount:       count,
		History:          history,
	})
	if err != nil {
		if errors.Is(err, curator.ErrCatalog) {
			setup.PrintInstructions(out)
		}
		return err
	}

	if err := store.Save(sessionID, history); err != nil {
		out.Warn("Could not persist session memory: " + err.Error())
	}

	if opts.JSON {
		return out.EmitJSON(map[string]any{
			"session":    sessionID,
			"vision":     res.Vision,
			"tracks":     res.Tracks,
			"videoIds":   res.VideoIDs,
			"playAllUrl": res.PlayAllURL(),
			"lesson":     res.Lesson,
		})
	}
	out.RenderMix(res)
	return nil
}

func clampCount(n int) int {
	if n < minTrackCount {
		return minTrackCount
	}
	if n > maxTrackCount {
		return maxTrackCount
	}
	return n
}

func sessionsPath(cfg config.Config) string {
	if cfg.SessionsPath != "" {
		return cfg.SessionsPath
	}
	return session.DefaultStorePath()
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

func readDescriptionFromStdin() string {
	scanner := bufio.NewScanner(os.Stdin)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}
