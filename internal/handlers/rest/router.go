package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cividesk/braintree-bridge/internal/domain/ports"
	"github.com/cividesk/braintree-bridge/internal/registry"
	"github.com/cividesk/braintree-bridge/internal/services/clienttoken"
	"github.com/cividesk/braintree-bridge/pkg/observability"
)

// RouterConfig carries the dependencies of the HTTP surface
type RouterConfig struct {
	Registry    *registry.Registry
	ClientToken *clienttoken.Service
	APIKey      string
	Logger      ports.Logger
}

// NewRouter builds the bridge's HTTP router
func NewRouter(cfg RouterConfig) (chi.Router, error) {
	form, err := NewFormHandler(cfg.ClientToken)
	if err != nil {
		return nil, err
	}

	payments := NewPaymentHandler(cfg.Registry, cfg.Logger)
	tokens := NewClientTokenHandler(cfg.ClientToken)
	metadata := NewMetadataHandler(cfg.Registry)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(observability.MetricsMiddleware(routePattern))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/payments", payments.ServeHTTP)
		r.With(requireAPIKey(cfg.APIKey, cfg.Logger)).
			Get("/client-token", tokens.ServeHTTP)
		r.Get("/processors", metadata.Processors)
		r.Get("/payment-fields/ach", metadata.ACHFields)
	})

	r.Get("/pay/ach", form.Page)
	r.Get("/pay/static/*", form.Static)

	return r, nil
}

func routePattern(r *http.Request) string {
	if ctx := chi.RouteContext(r.Context()); ctx != nil {
		if pattern := ctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
