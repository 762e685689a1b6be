package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/golemcloud/golem-examples/internal/branding"
	"github.com/golemcloud/golem-examples/internal/catalog"
	"github.com/golemcloud/golem-examples/internal/config"
	"github.com/golemcloud/golem-examples/internal/registry"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose    bool
	catalogDir string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: branding.CLIName(),
})

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates new Golem components from a catalog of built-in examples,
one or more per guest language, rewriting every name placeholder to the new component
and package names.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
		config.Load()
		if f := cmd.Flags().Lookup("catalog-dir"); f != nil && f.Changed {
			viper.Set(config.KeyCatalogDir, catalogDir)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog-dir", "", "Read examples from a catalog checkout instead of the built-in catalog")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	// fang styles help and error output and cancels the command context on
	// interrupt, which stops running toolchain steps.
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
}

// session is the state shared by commands that work on the example index.
type session struct {
	settings config.Settings
	catalog  *catalog.Catalog
	index    *registry.Index
}

// openSession resolves the catalog from the settings and builds its index.
func openSession() (*session, error) {
	settings, err := config.Current()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cat := catalog.Embedded()
	if settings.CatalogDir != "" {
		cat, err = catalog.FromDir(settings.CatalogDir)
		if err != nil {
			return nil, err
		}
	}
	logger.Debug("using catalog", "source", cat.Source())

	idx, err := registry.Build(cat, registry.Options{
		MetadataPolicy: settings.MetadataPolicy,
		SkipValidation: !settings.ValidateMetadata,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("indexing examples: %w", err)
	}

	return &session{settings: settings, catalog: cat, index: idx}, nil
}
