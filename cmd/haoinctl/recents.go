package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecentsCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recents",
		Short: "Manage the recently-used tool list",
	}
	cmd.AddCommand(newRecentsListCmd(opts), newRecentsClearCmd(opts), newRecentsTouchCmd(opts))
	return cmd
}

func newRecentsListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recently-used tools, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			return printRecents(application.Service().RecentTools(), opts.jsonOutput)
		},
	}
}

func newRecentsClearCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the recently-used list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			application.Service().ClearRecentTools()
			if !opts.jsonOutput {
				fmt.Println("recent tools cleared")
				return nil
			}
			return writeJSON(map[string]any{"cleared": true})
		},
	}
}

func newRecentsTouchCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "touch <tool-id>",
		Short: "Record a visit to a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			tool, err := application.Service().OpenTool(args[0])
			if err != nil {
				return exitWithMessage(2, fmt.Sprintf("unknown tool %q", args[0]))
			}
			if opts.jsonOutput {
				return writeJSON(map[string]any{"id": tool.ID, "title": tool.Title})
			}
			fmt.Printf("recorded visit to %s\n", tool.ID)
			return nil
		},
	}
}
