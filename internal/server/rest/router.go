// Package rest exposes the expedientes HTTP API: login, the guarded case-file
// resource, the to-do list, health and metrics.
package rest

import (
	"net/http"

	"github.com/dmitrijs2005/expedientes/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps are the collaborators the router dispatches to.
type Deps struct {
	Logger      logging.Logger
	Tokens      TokenVerifier
	Auth        LoginService
	Expedientes ExpedienteService
	Tasks       TaskService
	Metrics     *Metrics
}

type handlers struct {
	logger      logging.Logger
	auth        LoginService
	expedientes ExpedienteService
	taskSvc     TaskService
}

// NewRouter wires routes and middleware. Only /api/expedientes sits behind
// the auth gate.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	metrics := d.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	h := &handlers{
		logger:      logger.With("module", "rest"),
		auth:        d.Auth,
		expedientes: d.Expedientes,
		taskSvc:     d.Tasks,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.logger))
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Ruta no encontrada")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Método HTTP no soportado: "+r.Method)
	})

	r.Get("/api/health", health)
	r.Post("/api/auth/login", h.login)
	r.HandleFunc("/api/tasks", h.tasks)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/expedientes", func(r chi.Router) {
		r.Use(AuthGate(d.Tokens, h.logger))
		r.Get("/", h.listExpedientes)
		r.Post("/", h.createExpediente)
		r.Get("/{id}", h.getExpediente)
		r.Put("/{id}", h.updateExpediente)
		r.Delete("/{id}", h.deleteExpediente)
	})

	return r
}
