package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"vibecheck/internal/curator"
)

const (
	exitSuccess     = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		fmt.Fprintln(os.Stderr, "Interrupted (Ctrl-C)")
		os.Exit(exitInterrupted)
	}()

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, curator.ErrEmptyDescription) {
			fmt.Fprintln(os.Stderr, strings.Join([]string{
				"Missing scene or book description.",
				"Examples:",
				`  vibecheck "a tense dinner party that turns into a fist fight"`,
				`  vibecheck -i "rainy study session in a quiet library"`,
				`  echo "neon city at night" | vibecheck`,
				"Run with --help for usage.",
			}, "\n"))
			os.Exit(exitUsage)
		}
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
