// Copyright (c) 2026 Fyyur. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the composition root for the chi router.
  - Only this package and cmd/api import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/KonIngel/Fyyur/internal/core/artist"
	"github.com/KonIngel/Fyyur/internal/core/show"
	"github.com/KonIngel/Fyyur/internal/core/venue"
	"github.com/KonIngel/Fyyur/internal/platform/apperr"
	"github.com/KonIngel/Fyyur/internal/platform/config"
	"github.com/KonIngel/Fyyur/internal/platform/constants"
	"github.com/KonIngel/Fyyur/internal/platform/flash"
	"github.com/KonIngel/Fyyur/internal/platform/middleware"
	"github.com/KonIngel/Fyyur/internal/platform/respond"
)

// ShowsPath is where the show routes are mounted.
const ShowsPath = "/shows"

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups the HTTP handler sets the router mounts.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	Venue  *venue.Handler
	Artist *artist.Handler
	Show   *show.Handler

	// Flasher surfaces pending notices on the home page.
	Flasher *flash.Flasher
}

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Page"))
	})
	r.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.MethodNotAllowed())
	})

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Pages
	r.Get("/", home(h.Flasher))
	r.Mount(venue.BasePath, h.Venue.Routes())
	r.Mount(artist.BasePath, h.Artist.Routes())
	r.Mount(ShowsPath, h.Show.Routes())

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// home renders the landing page with any pending notice.
func home(flasher *flash.Flasher) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var notice *flash.Notice
		if pending, ok := flasher.ReadAndClear(writer, request); ok {
			notice = &pending
		}
		respond.View(writer, constants.ViewHome, nil, notice)
	}
}

// ListenAndServe starts the HTTP server. It blocks until the server is closed
// or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
