package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search tools across every supported language",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			query := strings.Join(args, " ")
			return printToolViews(application.Service().SearchViews(query), opts.jsonOutput)
		},
	}
}
