package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/misterclayt0n/treino/internal/catalog"
	"github.com/misterclayt0n/treino/internal/config"
	"github.com/misterclayt0n/treino/internal/logger"
	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/planner"
	"github.com/misterclayt0n/treino/internal/storage"
)

var (
	configPath  string
	catalogPath string

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "treino",
	Short:         "Build personalized workout sessions and periodized programs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if catalogPath != "" {
			cfg.Planner.CatalogPath = catalogPath
		}
		log, err = logger.New(cfg.Log.Mode)
		if err != nil {
			return fmt.Errorf("Failed to create logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
}

// Execute runs the CLI. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// openStorage opens the configured catalog database.
func openStorage(ctx context.Context) (*storage.Storage, error) {
	st, err := storage.Open(ctx, cfg.DB.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("Failed to open database: %w", err)
	}
	return st, nil
}

// loadCatalog reads the exercise catalog from the configured file, or from
// the database when no file is set.
func loadCatalog(ctx context.Context) ([]models.Exercise, error) {
	if cfg.Planner.CatalogPath != "" {
		exercises, err := catalog.Load(cfg.Planner.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("Failed to load catalog: %w", err)
		}
		log.Debug("catalog loaded", "path", cfg.Planner.CatalogPath, "exercises", len(exercises))
		return exercises, nil
	}

	st, err := openStorage(ctx)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	exercises, err := st.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to list exercises: %w", err)
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("The exercise catalog is empty. Run 'treino import-exercises' or pass --catalog")
	}
	log.Debug("catalog loaded", "source", "database", "exercises", len(exercises))
	return exercises, nil
}

func loadPlanner(ctx context.Context) (*planner.Planner, error) {
	exercises, err := loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return planner.New(exercises, log), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/treino/config.toml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Exercise catalog file (.csv, .xlsx or .toml) to use instead of the database")
}
