package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Handle(h.metricsPath, h.metrics.handler())

	router.Route("/api", func(api chi.Router) {
		api.Use(withGZip)
		if h.requestTimeout > 0 {
			api.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/signup", h.register)
			r.Post("/auth/login", h.login)
			r.Get("/version", h.getServerVersion)
			r.Get("/health", h.health)
		})

		// routes with authorization
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/invoices", h.listInvoices)
			r.Post("/invoices", h.createInvoice)
			r.Get("/invoices/stats", h.invoiceStats)
			r.Get("/invoices/{id}", h.getInvoice)
			r.Put("/invoices/{id}", h.updateInvoice)
			r.Delete("/invoices/{id}", h.deleteInvoice)
			r.Patch("/invoices/{id}/status", h.setInvoiceStatus)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
