package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/luggageshare/internal/buildinfo"
	"github.com/dmitrijs2005/luggageshare/internal/client/cli"
	"github.com/dmitrijs2005/luggageshare/internal/client/config"
	"github.com/dmitrijs2005/luggageshare/internal/client/services"
	"github.com/dmitrijs2005/luggageshare/internal/client/state"
	"github.com/dmitrijs2005/luggageshare/internal/client/storage"
	"github.com/dmitrijs2005/luggageshare/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context) error {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	defer db.Close()

	st := state.Load(ctx, storage.NewSQLiteRepository(db), logger)
	market := services.NewMarketService(st, state.NewSQLPersister(db), logger)

	logger.Debug(ctx, "state loaded", "dsn", cfg.DatabaseDSN, "users", len(st.Users), "deals", len(st.Deals))

	cli.NewApp(cfg, market, logger, os.Stdin, os.Stdout).Run(ctx)
	return nil
}
