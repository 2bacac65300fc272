package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/sparklewash/billing/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/billing", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateRecord)
			r.Get("/", h.Records)
			r.Get("/{id}", h.Record)
			r.Put("/{id}", h.UpdateRecord)
			r.Delete("/{id}", h.DeleteRecord)
			r.Put("/{id}/request-change", h.RequestChange)
			r.Put("/{id}/resolve-change", h.ResolveChange)
		})

		r.Route("/services", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.CreateServiceItem)
			r.Get("/", h.ServiceItems)
			r.Get("/{id}", h.ServiceItem)
			r.Put("/{id}", h.UpdateServiceItem)
			r.Delete("/{id}", h.DeleteServiceItem)
		})
	})

	return mux
}
