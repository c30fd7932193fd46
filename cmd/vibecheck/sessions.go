package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vibecheck/internal/config"
	"vibecheck/internal/output"
	"vibecheck/internal/session"
)

func newSessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage persisted lesson memory",
	}
	cmd.AddCommand(newSessionsListCommand(), newSessionsShowCommand(), newSessionsClearCommand())
	return cmd
}

func newSessionsListCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions with stored lessons",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewFileStore(sessionsPath(config.Load()))
			out := output.New(output.Options{JSON: asJSON})
			records := store.List()
			if asJSON {
				return out.EmitJSON(map[string]any{"sessions": records})
			}
			if len(records) == 0 {
				out.Print("No sessions stored.")
				return nil
			}
			for _, r := range records {
				out.Print(fmt.Sprintf("%s  %d lesson(s)  updated %s", r.ID, len(r.Lessons), r.UpdatedAt))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit as JSON")
	return cmd
}

func newSessionsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Print the lessons accumulated in one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewFileStore(sessionsPath(config.Load()))
			out := output.New(output.Options{})
			history := store.History(args[0])
			if history.Len() == 0 {
				out.Print("No lessons stored for " + args[0])
				return nil
			}
			out.Print(history.Render())
			return nil
		},
	}
}

func newSessionsClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewFileStore(sessionsPath(config.Load()))
			if err := store.Clear(); err != nil {
				return err
			}
			output.New(output.Options{}).Success("Sessions cleared.")
			return nil
		},
	}
}
