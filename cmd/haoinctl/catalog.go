package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hong0506/haoin-tools-sub002/internal/app"
	infracatalog "github.com/hong0506/haoin-tools-sub002/internal/infra/catalog"
)

func newCatalogCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the tool catalog",
	}
	cmd.AddCommand(newCatalogListCmd(opts), newCatalogValidateCmd(opts), newCatalogExportCmd(opts))
	return cmd
}

func newCatalogListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every catalog tool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			return printToolViews(application.Service().AllViews(), opts.jsonOutput)
		},
	}
}

func newCatalogValidateCmd(opts *cliOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog file and report every issue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.catalogPath == "" {
				return exitWithMessage(2, "catalog validate requires --catalog")
			}

			watcher := app.NewCatalogWatcher(opts.logger, opts.catalogPath)
			if !watch {
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()

				var result app.ValidationResult
				err := watcher.Run(ctx, func(r app.ValidationResult) {
					result = r
					cancel()
				})
				if err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return reportValidation(result, opts.jsonOutput)
			}

			fmt.Printf("watching %s (ctrl-c to stop)\n", opts.catalogPath)
			err := watcher.Run(cmd.Context(), func(result app.ValidationResult) {
				_ = reportValidation(result, opts.jsonOutput)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "re-validate whenever the file changes")
	return cmd
}

func newCatalogExportCmd(opts *cliOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as a YAML file",
		Long:  "Export the active catalog (built-in unless --catalog is set) as YAML, a starting point for a custom catalog.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer func() { _ = application.Close() }()

			catalog := application.Service().Catalog()
			if out == "" {
				data, err := infracatalog.Export(catalog)
				if err != nil {
					return err
				}
				fmt.Print(string(data))
				return nil
			}
			if err := infracatalog.WriteFile(out, catalog); err != nil {
				return err
			}
			fmt.Printf("catalog written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "destination file (default: stdout)")
	return cmd
}

func reportValidation(result app.ValidationResult, jsonOutput bool) error {
	if result.Err != nil {
		return exitWithMessage(1, fmt.Sprintf("validate catalog: %v", result.Err))
	}
	if jsonOutput {
		issues := result.Issues
		if issues == nil {
			issues = []string{}
		}
		if err := writeJSON(map[string]any{"valid": len(issues) == 0, "issues": issues}); err != nil {
			return err
		}
	} else if len(result.Issues) == 0 {
		fmt.Println("catalog is valid")
	} else {
		for _, issue := range result.Issues {
			fmt.Printf("issue: %s\n", issue)
		}
	}
	if len(result.Issues) > 0 {
		return exitError{code: 1, silent: true}
	}
	return nil
}
