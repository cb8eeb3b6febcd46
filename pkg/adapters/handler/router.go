package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wadjakorntonsri/coin-collection/pkg/config"
	"github.com/wadjakorntonsri/coin-collection/pkg/metrics"
	"github.com/wadjakorntonsri/coin-collection/pkg/ports"
)

// NewRouter creates and configures the main application router
func NewRouter(cfg *config.Config, log *zap.Logger, service ports.CollectionService, jobs ports.JobDispatcher) http.Handler {
	ch := NewCollectionHandler(service, jobs)
	sh := NewSeriesHandler(service)
	jh := NewJobHandler(jobs)
	authHandler := NewAuthHandler(cfg)
	mw := NewMiddleware(cfg, log)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(mw.RequestLogger)
	r.Use(mw.Recoverer)
	r.Use(metrics.Middleware())
	r.Use(mw.CORS())

	// Public Routes
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/auth/google/login", authHandler.Login)
	r.Get("/auth/google/callback", authHandler.Callback)
	r.Get("/auth/logout", authHandler.Logout)

	// Protected Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.AuthMiddleware)
		r.Use(mw.RateLimit)

		r.Get("/series", sh.ListSeries)
		r.Get("/series/{index}", sh.GetSeries)
		r.Post("/series/{index}/preview", sh.Preview)

		r.Get("/collections", ch.ListCollections)
		r.Post("/collections", ch.CreateCollection)
		r.Put("/collections/order", ch.ReorderCollections)
		r.Route("/collections/{name}", func(r chi.Router) {
			r.Get("/", ch.GetCollection)
			r.Put("/", ch.EditCollection)
			r.Delete("/", ch.DeleteCollection)
			r.Post("/copy", ch.CopyCollection)
			r.Put("/display", ch.SetDisplayType)
			r.Get("/summary", ch.Summary)
			r.Patch("/slots/{index}", ch.UpdateSlot)
			r.Delete("/slots/{index}", ch.DeleteSlot)
			r.Post("/slots/{index}/copy", ch.CopySlot)
		})

		r.Get("/export", ch.Export)
		r.Post("/import", ch.Import)
		r.Post("/extend", ch.ExtendToYear)
		r.Get("/jobs/{id}", jh.GetJob)
	})

	return r
}
