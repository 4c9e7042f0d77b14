package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc          port.CampaignUseCase
	logger       *slog.Logger
	callerHeader string
	router       chi.Router
}

// NewHandler creates a handler with all routes configured. callerHeader
// names the header carrying the authenticated caller address; metrics, when
// non-nil, is mounted at /metrics.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, callerHeader string, metrics http.Handler) *Handler {
	h := &Handler{svc: svc, logger: logger, callerHeader: callerHeader}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1/campaigns", func(r chi.Router) {
		r.Get("/", h.handleListCampaigns)
		r.Get("/count", h.handleCampaignCount)
		r.Get("/{id}", h.handleCampaignDetails)
		r.Get("/{id}/contributions/{backer}", h.handleContributionOf)

		r.Group(func(r chi.Router) {
			r.Use(h.requireCaller)
			r.Post("/", h.handleCreateCampaign)
			r.Post("/{id}/contributions", h.handleContribute)
			r.Post("/{id}/withdraw", h.handleWithdraw)
			r.Post("/{id}/refund", h.handleRefund)
			r.Post("/{id}/cancel", h.handleCancel)
			r.Post("/{id}/owner", h.handleTransferOwnership)
			r.Post("/{id}/deadline", h.handleExtendDeadline)
		})
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
