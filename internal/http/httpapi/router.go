package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"campaignhub/internal/http/handlers"
	"campaignhub/internal/infra"
	"campaignhub/internal/middleware"
)

// Options carries the cross-cutting settings for the router.
type Options struct {
	Logger         *infra.Logger
	AllowedOrigins []string
	RateLimit      int
	DefaultLocale  string
	CountryLookup  middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(*infra.OrNop(opts.Logger)),
		middleware.CORS(opts.AllowedOrigins),
		middleware.RateLimit(opts.RateLimit, time.Minute),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.APIDocument)
		r.Get("/docs", app.APIReference)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", app.ListCampaigns)
			r.Post("/", app.CreateCampaign)
			r.Get("/{id}", app.GetCampaign)
			r.Put("/{id}", app.UpdateCampaign)
			r.Delete("/{id}", app.DeleteCampaign)
		})
		r.Route("/communities", func(r chi.Router) {
			r.Get("/", app.ListCommunities)
			r.Post("/", app.CreateCommunity)
			r.Get("/{id}", app.GetCommunity)
			r.Put("/{id}", app.UpdateCommunity)
			r.Delete("/{id}", app.DeleteCommunity)
		})
		r.Route("/donors", func(r chi.Router) {
			r.Get("/", app.ListDonors)
			r.Post("/", app.CreateDonor)
			r.Get("/{id}", app.GetDonor)
			r.Put("/{id}", app.UpdateDonor)
		})

		r.Get("/summary", app.Summary)
		r.Post("/refresh", app.Refresh)
		r.Get("/export", app.Export)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/metrics", app.Metrics)
			r.Get("/coverage", app.Coverage)
			r.Get("/funding-trends", app.FundingTrends)
		})
		r.Route("/ml", func(r chi.Router) {
			r.Get("/recommendations", app.Recommendations)
			r.Get("/matches/{communityID}", app.DonorMatches)
			r.Get("/predictions/{campaignID}", app.PredictFunding)
		})

		r.Route("/session", func(r chi.Router) {
			r.Post("/", app.Login)
			r.Post("/register", app.Register)
			r.Delete("/", app.Logout)
		})
	})

	return r
}
