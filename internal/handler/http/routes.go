// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// pathParamID is the only named path parameter used by the routes.
const pathParamID = "id"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.GetHead)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	// informational routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.greeting)
		r.Get("/json_content_type", h.jsonGreeting)
		r.Get("/raw_headers", h.rawHeaders)
		r.Get("/headers", h.headers)
	})

	// routes validating a request body or header
	router.Group(func(r chi.Router) {
		r.Post("/contact", h.contact)
		r.Post("/contact_json", h.contactJSON)
		r.Post("/status_codes", h.statusCodes)
		r.Post("/login", h.login)
	})

	router.Route("/post", func(r chi.Router) {
		r.Put("/create/{"+pathParamID+"}", h.createPost)
		r.Delete("/delete/{"+pathParamID+"}", h.deletePost)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
