package routes

import (
	"net/http"

	"github.com/Japacho1/tasky/internal/api/handlers"
	"github.com/Japacho1/tasky/internal/api/middleware"
	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler     *handlers.AuthHandler
	locationHandler *handlers.LocationHandler
	catalogHandler  *handlers.CatalogHandler
	providerHandler *handlers.ProviderHandler
	requestHandler  *handlers.RequestHandler
	ratingHandler   *handlers.RatingHandler

	verifier middleware.TokenVerifier
	metrics  *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	locationHandler *handlers.LocationHandler,
	catalogHandler *handlers.CatalogHandler,
	providerHandler *handlers.ProviderHandler,
	requestHandler *handlers.RequestHandler,
	ratingHandler *handlers.RatingHandler,
	verifier middleware.TokenVerifier,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		authHandler:     authHandler,
		locationHandler: locationHandler,
		catalogHandler:  catalogHandler,
		providerHandler: providerHandler,
		requestHandler:  requestHandler,
		ratingHandler:   ratingHandler,
		verifier:        verifier,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	authed := middleware.Authenticate(r.verifier)
	providerOnly := middleware.RequireRole(string(entities.RoleProvider))

	protected := func(h http.HandlerFunc) http.Handler {
		return authed(h)
	}
	providerProtected := func(h http.HandlerFunc) http.Handler {
		return authed(providerOnly(h))
	}

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Identity endpoints
	r.mux.HandleFunc("POST /signup", r.authHandler.Signup)
	r.mux.HandleFunc("POST /login", r.authHandler.Login)

	// Location endpoints
	r.mux.Handle("POST /api/update-location", protected(r.locationHandler.UpdateLocation))
	r.mux.Handle("POST /api/update-requester-location", protected(r.locationHandler.UpdateLocation))

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/services", r.catalogHandler.ListServices)
	r.mux.Handle("GET /api/provider-services", providerProtected(r.catalogHandler.GetProviderServices))
	r.mux.Handle("POST /api/provider-services", providerProtected(r.catalogHandler.UpdateProviderServices))
	r.mux.HandleFunc("GET /api/providers/{id}/services", r.catalogHandler.GetServicesByProvider)

	// Provider discovery endpoints
	r.mux.HandleFunc("POST /api/providers-by-service", r.providerHandler.FindProviders)
	r.mux.HandleFunc("GET /api/providers", r.providerHandler.ListProviders)
	r.mux.HandleFunc("GET /api/providers-with-location", r.providerHandler.ListProvidersWithLocation)

	// Request lifecycle endpoints
	r.mux.Handle("POST /api/requests", protected(r.requestHandler.CreateRequest))
	r.mux.Handle("GET /api/provider-requests", providerProtected(r.requestHandler.GetProviderRequests))
	r.mux.Handle("GET /api/my-requests", protected(r.requestHandler.GetMyRequests))
	r.mux.Handle("POST /api/requests/accept/{id}", providerProtected(r.requestHandler.AcceptRequest))
	r.mux.Handle("DELETE /api/requests/{id}", protected(r.requestHandler.DeleteRequest))

	// Rating endpoints
	r.mux.Handle("POST /api/ratings", protected(r.ratingHandler.SubmitRating))
	r.mux.HandleFunc("GET /api/providers/{id}/average-rating", r.ratingHandler.GetAverageRating)

	// Middleware apply in reverse order; CORS is outermost so its headers
	// are present on every response including preflights.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}
	handler = middleware.CORSMiddleware(handler)

	return handler
}
