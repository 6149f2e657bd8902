package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sword9322/vexgen/internal/generator"
	"github.com/sword9322/vexgen/internal/ratelimit"
	"github.com/sword9322/vexgen/internal/store"
)

type Server struct {
	router  *chi.Mux
	port    int
	gen     *generator.Generator
	store   *store.Store
	limiter *ratelimit.Limiter
}

func NewServer(port int, apiToken string, gen *generator.Generator, db *store.Store, limiter *ratelimit.Limiter) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:  router,
		port:    port,
		gen:     gen,
		store:   db,
		limiter: limiter,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/vexgen/status", s.status)
	router.Route("/api/v1/generate", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Post("/", s.generate)
		r.Get("/", s.generateMethodNotAllowed)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// BearerAuthMiddleware rejects requests without the configured bearer token.
// An empty token disables the check.
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
				writeError(w, http.StatusUnauthorized, apiError{
					Error: "Unauthorized.",
					Code:  "UNAUTHORIZED",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type apiError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, e apiError) {
	writeJSON(w, status, e)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"service": "vexgen",
		"status":  "ok",
	}
	if s.store != nil {
		if n, err := s.store.CountGenerations(r.Context()); err == nil {
			body["generations"] = n
		}
	}
	writeJSON(w, http.StatusOK, body)
}
