package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoritesCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorited tools",
	}
	cmd.AddCommand(
		newFavoritesListCmd(opts),
		newFavoritesAddCmd(opts),
		newFavoritesRemoveCmd(opts),
		newFavoritesToggleCmd(opts),
	)
	return cmd
}

func newFavoritesListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorited tool ids",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			return printFavorites(application.Service().Favorites(), opts.jsonOutput)
		},
	}
}

func newFavoritesAddCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <tool-id>",
		Short: "Favorite a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateFavorites(cmd, opts, args[0], func(service favoriteService, id string) {
				service.AddFavorite(id)
			})
		},
	}
}

func newFavoritesRemoveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tool-id>",
		Short: "Unfavorite a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateFavorites(cmd, opts, args[0], func(service favoriteService, id string) {
				service.RemoveFavorite(id)
			})
		},
	}
}

func newFavoritesToggleCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <tool-id>",
		Short: "Flip a tool's favorite state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateFavorites(cmd, opts, args[0], func(service favoriteService, id string) {
				service.ToggleFavorite(id)
			})
		},
	}
}

type favoriteService interface {
	AddFavorite(id string)
	RemoveFavorite(id string)
	ToggleFavorite(id string)
	IsFavorited(id string) bool
}

func mutateFavorites(cmd *cobra.Command, opts *cliOptions, id string, mutate func(favoriteService, string)) error {
	application, err := newApp(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer func() { _ = application.Close() }()

	service := application.Service()
	if _, ok := service.Catalog().ToolByID(id); !ok {
		return exitWithMessage(2, fmt.Sprintf("unknown tool %q", id))
	}
	mutate(service, id)

	if opts.jsonOutput {
		return writeJSON(map[string]any{"id": id, "favorited": service.IsFavorited(id)})
	}
	fmt.Printf("%s favorited=%t\n", id, service.IsFavorited(id))
	return nil
}
