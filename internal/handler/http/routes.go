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
	router.Use(withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/journal", func(r chi.Router) {
		r.Use(h.auth)

		// credential routes: platform auth only — they are how the
		// journal gets unlocked in the first place
		r.Get("/credential", h.getCredentialStatus)
		r.Post("/credential", h.createCredential)
		r.Post("/credential/verify", h.verifyCredential)

		r.Post("/hashtags", h.previewHashtags)

		// entry and version routes additionally require the unlock token
		r.Group(func(r chi.Router) {
			r.Use(h.journalGate)

			r.Route("/entries", func(r chi.Router) {
				r.Get("/", h.listEntries)
				r.Post("/", h.createEntry)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.getEntry)
					r.Put("/", h.updateEntry)

					r.Get("/versions", h.listVersions)
					r.Get("/versions/{versionNumber}", h.getVersion)
					r.Post("/versions/{versionNumber}/restore", h.restoreVersion)
				})
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
