// Package cli implements the rionido CLI commands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/config"
	"github.com/mytravelspring/rio-nido-complete/internal/planner"
	"github.com/mytravelspring/rio-nido-complete/internal/store"
)

var (
	dbPath     string
	formatFlag string
	logLevel   string
	envFile    string

	cfg    config.Config
	logger = slog.New(slog.DiscardHandler)
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "rionido",
	Short: "Itinerary planner for guests of Rio Nido Lodge",
	Long:  "Builds multi-day Russian River itineraries from a curated catalog of nearby businesses. Plan, swap and export from the shell, or serve the JSON API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(envFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			if _, err := config.ParseLevel(logLevel); err != nil {
				return err
			}
			c.LogLevel = logLevel
		}
		if formatFlag != "json" && formatFlag != "text" {
			return fmt.Errorf("invalid format %q (use json or text)", formatFlag)
		}
		cfg = c
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Catalog database path (default: $RIONIDO_DB or ~/.rionido/catalog.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $RIONIDO_LOG_LEVEL or info)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load settings from this .env file")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	return config.DefaultDBPath()
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

// loadCatalog reads the curated catalog from the database when one exists,
// falling back to the built-in catalog.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path := getDBPath()
	if _, err := os.Stat(path); err != nil {
		logger.Debug("using built-in catalog", "db", path)
		return catalog.Default(), nil
	}

	s, err := store.NewSQLiteStore(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	c, err := s.LoadCatalog(cmd.Context())
	if errors.Is(err, store.ErrEmptyCatalog) {
		logger.Debug("database catalog empty, using built-in catalog", "db", path)
		return catalog.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded catalog", "db", path, "businesses", c.Len())
	return c, nil
}

func newPlanner(cmd *cobra.Command) *planner.Planner {
	c, err := loadCatalog(cmd)
	if err != nil {
		exitErr("load catalog", err)
	}
	return planner.New(c, planner.WithLogger(logger))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
