package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adfleet/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: campaign, lead and connection use cases sit behind a bearer-token
// middleware that puts the caller's user id into the request context.
type Handler struct {
	campaigns   port.CampaignUseCase
	connections port.ConnectionUseCase
	leads       port.LeadUseCase
	auth        *Authenticator
	logger      *slog.Logger
	validate    *validator.Validate
	metrics     *Metrics
	gatherer    prometheus.Gatherer
	router      chi.Router
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetrics records request metrics into m and serves g on /metrics.
func WithMetrics(m *Metrics, g prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = m
		h.gatherer = g
	}
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	campaigns port.CampaignUseCase,
	connections port.ConnectionUseCase,
	leads port.LeadUseCase,
	auth *Authenticator,
	logger *slog.Logger,
	opts ...Option,
) *Handler {
	h := &Handler{
		campaigns:   campaigns,
		connections: connections,
		leads:       leads,
		auth:        auth,
		logger:      logger,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}

	r.Get("/healthz", h.handleHealth)
	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.auth.Middleware)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Put("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Get("/leads", h.handleCampaignLeads)
				r.Post("/launch", h.lifecycle(h.campaigns.Launch))
				r.Post("/pause", h.lifecycle(h.campaigns.Pause))
				r.Post("/resume", h.lifecycle(h.campaigns.Resume))
				r.Post("/sync", h.lifecycle(h.campaigns.Sync))
			})
		})

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", h.handleListLeads)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetLead)
				r.Patch("/status", h.handleLeadStatus)
				r.Patch("/notes", h.handleLeadNotes)
			})
		})

		r.Route("/platforms", func(r chi.Router) {
			r.Get("/", h.handleListPlatforms)
			r.Post("/connect/{platform}", h.handleConnect)
			r.Post("/disconnect/{platform}", h.handleDisconnect)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
