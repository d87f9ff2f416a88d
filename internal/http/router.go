package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	changeorderv1 "github.com/rgoodwin/quoteforge/internal/http/changeorder"
	clientv1 "github.com/rgoodwin/quoteforge/internal/http/client"
	companyv1 "github.com/rgoodwin/quoteforge/internal/http/company"
	jobv1 "github.com/rgoodwin/quoteforge/internal/http/job"
	portalv1 "github.com/rgoodwin/quoteforge/internal/http/portal"
	quotev1 "github.com/rgoodwin/quoteforge/internal/http/quote"
	templatev1 "github.com/rgoodwin/quoteforge/internal/http/template"
	voicev1 "github.com/rgoodwin/quoteforge/internal/http/voice"
	"github.com/rgoodwin/quoteforge/internal/tenant"
)

func New(
	companyV1 *companyv1.Handler,
	clientV1 *clientv1.Handler,
	templateV1 *templatev1.Handler,
	quoteV1 *quotev1.Handler,
	jobV1 *jobv1.Handler,
	changeOrderV1 *changeorderv1.Handler,
	voiceV1 *voicev1.Handler,
	portalV1 *portalv1.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", tenant.Header},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(tenant.Middleware)

		r.Route("/company", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			companyV1.Routes(r)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			clientV1.Routes(r)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			templateV1.Routes(r)
		})

		r.Route("/quotes", quoteV1.Routes)

		r.Route("/jobs", func(r chi.Router) {
			jobV1.Routes(r)
			r.Route("/{id}/change-orders", changeOrderV1.JobRoutes)
		})

		r.Route("/change-orders", changeOrderV1.Routes)

		// Audio uploads arrive as raw bodies, so no content-type gate.
		r.Route("/voice-sessions", voiceV1.Routes)
	})

	router.Route("/portal", portalV1.Routes)

	return router
}
