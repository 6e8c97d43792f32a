package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/dshills/stemtutor/internal/knowledge"
	"github.com/dshills/stemtutor/internal/tutor"
)

// Server bundles the tutor and its HTTP surface.
type Server struct {
	tutor    *tutor.Tutor
	kb       *knowledge.Base
	logger   *zap.Logger
	validate *validator.Validate
}

// New creates a Server. The logger must not be nil.
func New(t *tutor.Tutor, kb *knowledge.Base, logger *zap.Logger) *Server {
	return &Server{
		tutor:    t,
		kb:       kb,
		logger:   logger,
		validate: validator.New(),
	}
}

// Handler builds the chi router with the full middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Get("/history", s.handleHistory)
		r.Get("/topics", s.handleTopics)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "not_found", "endpoint not found")
	})

	return r
}
