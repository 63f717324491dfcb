package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hong0506/haoin-tools-sub002/internal/app"
	"github.com/hong0506/haoin-tools-sub002/internal/domain"
	"github.com/hong0506/haoin-tools-sub002/internal/infra/telemetry"
)

type cliOptions struct {
	catalogPath string
	localesDir  string
	dataDir     string
	lang        string
	jsonOutput  bool
	verbose     bool
	logger      *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := cliOptions{
		lang:   string(domain.DefaultLanguage),
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "haoinctl",
		Short:         "Browse, search and manage the haoin tool collection",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				opts.logger = logger
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "path to a catalog file (default: built-in catalog)")
	root.PersistentFlags().StringVar(&opts.localesDir, "locales", "", "directory with locale overrides (default: embedded locales)")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory holding the preference database")
	root.PersistentFlags().StringVar(&opts.lang, "lang", opts.lang, "display language code")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSearchCmd(&opts),
		newFavoritesCmd(&opts),
		newRecentsCmd(&opts),
		newCatalogCmd(&opts),
		newToolCmd(&opts),
	)

	return root
}

func newApp(ctx context.Context, opts *cliOptions) (*app.App, error) {
	return app.New(ctx, opts.logger, app.Options{
		CatalogPath: opts.catalogPath,
		LocalesDir:  opts.localesDir,
		DataDir:     opts.dataDir,
		Lang:        domain.Language(opts.lang),
		// one command per process, so process-wide registration is safe
		Metrics: telemetry.NewMetrics(prometheus.DefaultRegisterer),
	})
}
