package main

import (
	"context"
	"fmt"

	"github.com/dkovalev/go-db-console/internal/config"
	handlerHTTP "github.com/dkovalev/go-db-console/internal/handler/http"
	"github.com/dkovalev/go-db-console/internal/logger"
	"github.com/dkovalev/go-db-console/internal/prefs"
	"github.com/dkovalev/go-db-console/internal/server"
	"github.com/dkovalev/go-db-console/internal/store"
	"github.com/dkovalev/go-db-console/internal/workers"
	"github.com/dkovalev/go-db-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("db-console-server")
	cfg, err := config.GetBootConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	base := config.NewResolver(cfg.Site.ConfigPath, log)
	if loaded, err := base.LoadSite(); err != nil {
		log.Fatal().Err(err).Msg("error loading site configuration")
	} else if loaded {
		log.Info().Str("path", cfg.Site.ConfigPath).Msg("site configuration loaded")
	}

	// Overlay storage is database-backed when a DSN is configured; without
	// one the application runs in cookie-only mode.
	var prefStore prefs.Store
	if cfg.Storage.DB.DSN != "" {
		db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to configuration storage")
		}
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error migrating configuration storage")
		}
		prefStore = prefs.NewDBStore(db.DB, db, log)
	} else {
		log.Info().Msg("no configuration storage DSN, user preferences are cookie-backed")
	}

	handlers := handlerHTTP.NewHandler(base, prefStore, cfg, log)

	watcher := workers.NewSiteWatcher(cfg.Site.ConfigPath, cfg.Site.WatchInterval, handlers, log)
	workers.NewWorkers(watcher).Run()
	defer watcher.Stop()

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
