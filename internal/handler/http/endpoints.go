// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/internal/status"
	"github.com/MKhiriev/http-contracts/internal/utils"
	"github.com/MKhiriev/http-contracts/models"
)

// endpointFunc is the shape shared by every service method behind a route.
type endpointFunc func(ctx context.Context, req models.Request) models.Outcome

// serve adapts an endpointFunc to an http.HandlerFunc: it builds the request,
// runs the endpoint and writes exactly one response.
func (h *Handler) serve(endpoint endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := h.newRequest(w, r)
		h.respond(w, r, endpoint(r.Context(), req))
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, out models.Outcome) {
	log := logger.FromRequest(r)

	resp := status.Resolve(out)
	log.Debug().
		Stringer("outcome", out.Kind).
		Int("status", resp.Status).
		Str("missing_field", out.MissingField).
		Msg("outcome resolved")

	if _, err := utils.WriteResponse(w, resp); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.services.InfoService.Greeting(r.Context()))
}

func (h *Handler) jsonGreeting(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.services.InfoService.JSONGreeting(r.Context()))
}

func (h *Handler) rawHeaders(w http.ResponseWriter, r *http.Request) {
	h.serve(h.services.InfoService.RawHeaders)(w, r)
}

func (h *Handler) headers(w http.ResponseWriter, r *http.Request) {
	h.serve(h.services.InfoService.Headers)(w, r)
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	h.serve(h.services.ContactService.SubmitContact)(w, r)
}

func (h *Handler) contactJSON(w http.ResponseWriter, r *http.Request) {
	h.serve(h.services.ContactService.SubmitContactJSON)(w, r)
}

func (h *Handler) statusCodes(w http.ResponseWriter, r *http.Request) {
	h.serve(h.services.AccountService.CreateAccount)(w, r)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.serve(h.services.AuthService.Login)(w, r)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	h.serve(h.services.PostService.CreatePost)(w, r)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	h.serve(h.services.PostService.DeletePost)(w, r)
}

// notFound answers any request no route accepted, whatever its method.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	text := fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path)
	h.respond(w, r, models.NotFound(models.TextBody(text)))
}
