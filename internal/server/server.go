package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tshirtMarketAi/internal/analysis"
	"tshirtMarketAi/internal/logger"
	"tshirtMarketAi/internal/market"
	"tshirtMarketAi/internal/trends"
)

// New constructs the HTTP server with routes and middleware.
func New(port string, analysisHandler analysis.Handler, marketHandler market.Handler, trendsHandler trends.Handler) *http.Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/analysis", func(r chi.Router) {
			r.Post("/single", analysisHandler.Single)
			r.Post("/batch", analysisHandler.Batch)
			r.Get("/events", analysisHandler.StreamEvents)
		})
		r.Route("/market", func(r chi.Router) {
			r.Get("/locations", marketHandler.Locations)
			r.Get("/insights/{location}", marketHandler.Insights)
			r.Get("/compare/{first}/{second}", marketHandler.Compare)
		})
		r.Route("/trends", func(r chi.Router) {
			r.Post("/current", trendsHandler.Current)
			r.Post("/competitor-analysis", trendsHandler.Competitor)
		})
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     router,
		ReadTimeout: 30 * time.Second,
		// Analyses hold the connection while several AI calls complete.
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.WithField("addr", srv.Addr).Info("server ready")
	return srv
}
