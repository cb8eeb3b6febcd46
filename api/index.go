package handler

import (
	"context"
	"net/http"

	"github.com/wadjakorntonsri/coin-collection/pkg/adapters/handler"
	"github.com/wadjakorntonsri/coin-collection/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/coin-collection/pkg/config"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/services"
	"github.com/wadjakorntonsri/coin-collection/pkg/logger"
)

var mux http.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	// Note: On Vercel, a file database is ephemeral unless DATABASE_URL points at libSQL/Turso
	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}

	// Jobs only progress while the function instance is warm.
	jobs := services.NewDispatcher(cfg.JobQueueSize)
	if err := jobs.Start(logger.ContextWithLogger(context.Background(), log)); err != nil {
		panic(err)
	}

	mux = handler.NewRouter(cfg, log, services.NewCollectionService(repo), jobs)
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
