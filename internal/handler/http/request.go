// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/MKhiriev/http-contracts/internal/decoder"
	"github.com/MKhiriev/http-contracts/internal/headers"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/models"
	"github.com/go-chi/chi/v5"
)

// newRequest builds the endpoint view of r. The body is read once and its
// encoding detected from Content-Type; path parameters come from the chi
// route context and are always percent-decoded.
func (h *Handler) newRequest(w http.ResponseWriter, r *http.Request) models.Request {
	inspector := headers.New(r)
	contentType, _ := inspector.Get("Content-Type")

	req := models.Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: inspector,
		Body: models.RawBody{
			Bytes:       h.readBody(w, r),
			ContentType: contentType,
			Encoding:    decoder.DetectEncoding(contentType),
		},
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if req.PathParams == nil {
				req.PathParams = make(map[string]string, len(rctx.URLParams.Keys))
			}
			req.PathParams[key] = pathParamValue(r, rctx.URLParams.Values[i])
		}
	}

	return req
}

// pathParamValue decodes a captured path segment. chi routes on r.URL.RawPath
// when it is set, so only then is the value still escaped. A value that does
// not unescape is returned as captured.
func pathParamValue(r *http.Request, value string) string {
	if r.URL.RawPath == "" {
		return value
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}

// readBody returns the request body, or nil when it cannot be read in full
// within the configured limit.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	body := io.Reader(r.Body)
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		logger.FromRequest(r).Warn().
			Err(fmt.Errorf("%w: %w", ErrBodyRead, err)).
			Int64("limit", h.maxBodyBytes).
			Msg("serving request with empty body")
		return nil
	}

	return raw
}
