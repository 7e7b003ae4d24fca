// Package server exposes itinerary sessions over a JSON HTTP API. Every
// session owns its own itinerary and used set.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
	"github.com/mytravelspring/rio-nido-complete/internal/planner"
)

type Options struct {
	SessionTTL     time.Duration
	RateLimit      float64
	RateBurst      int
	ShareBase      string
	AllowedOrigins []string
	Logger         *slog.Logger
}

type Server struct {
	planner   *planner.Planner
	sessions  *Registry
	limiter   *RateLimiter
	log       *slog.Logger
	shareBase string
	origins   []string
}

func New(p *planner.Planner, opts Options) *Server {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 20
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Server{
		planner:   p,
		sessions:  NewRegistry(opts.SessionTTL),
		limiter:   NewRateLimiter(opts.RateLimit, opts.RateBurst),
		log:       opts.Logger,
		shareBase: opts.ShareBase,
		origins:   opts.AllowedOrigins,
	}
}

func (s *Server) Sessions() *Registry { return s.sessions }

func (s *Server) router() *httprouter.Router {
	router := httprouter.New()
	lim := s.limiter.Limit

	router.GET("/health", s.handleHealth)

	router.GET("/api/catalog", lim(s.handleCatalog))
	router.GET("/api/signatures", lim(s.handleSignatures))
	router.GET("/api/travel-styles", lim(s.handleTravelStyles))

	router.POST("/api/sessions", lim(s.handleCreateSession))
	router.GET("/api/sessions/:id", lim(s.handleGetSession))
	router.PUT("/api/sessions/:id", lim(s.handleRegenerate))
	router.DELETE("/api/sessions/:id", lim(s.handleDeleteSession))
	router.GET("/api/sessions/:id/days/:day/activities/:activity/alternatives", lim(s.handleAlternatives))
	router.GET("/api/sessions/:id/days/:day/calendar.ics", lim(s.handleCalendar))
	router.POST("/api/sessions/:id/swap", lim(s.handleSwap))
	router.GET("/api/sessions/:id/share", lim(s.handleShare))
	router.GET("/api/sessions/:id/share.png", lim(s.handleShareQR))
	router.GET("/api/sessions/:id/export.txt", lim(s.handleExportText))
	router.GET("/api/sessions/:id/export.pdf", lim(s.handleExportPDF))

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such route")
	})
	return router
}

// Handler returns the full middleware chain: logging, CORS, then routing.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return logRequests(s.log, c.Handler(s.router()))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

// statusFor maps engine errors onto HTTP statuses.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, planner.ErrNoInterests):
		return http.StatusBadRequest, "no_interests"
	case errors.Is(err, planner.ErrInvalidDuration),
		errors.Is(err, planner.ErrUnknownSignature),
		errors.Is(err, model.ErrInvalidCategory):
		return http.StatusBadRequest, "invalid_preferences"
	case errors.Is(err, planner.ErrActivityNotFound):
		return http.StatusNotFound, "activity_not_found"
	case errors.Is(err, planner.ErrAlreadyUsed):
		return http.StatusConflict, "already_used"
	case errors.Is(err, planner.ErrNoItinerary):
		return http.StatusConflict, "no_itinerary"
	case errors.Is(err, planner.ErrNotSwappable):
		return http.StatusUnprocessableEntity, "not_swappable"
	case errors.Is(err, planner.ErrNotAlternative):
		return http.StatusUnprocessableEntity, "not_alternative"
	}
	return http.StatusInternalServerError, "internal"
}

func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
	}
	writeError(w, status, code, err.Error())
}
