// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID attaches one.
func makeRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		target           string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET greeting",
			method:          http.MethodGet,
			target:          "/",
			handlerStatus:   http.StatusOK,
			handlerResponse: "<h1>Hello</h1>",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/"`,
				`"status":200`,
				`"size":14`,
			},
		},
		{
			name:            "POST created",
			method:          http.MethodPost,
			target:          "/status_codes",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "Thank you",
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/status_codes"`,
				`"status":201`,
			},
		},
		{
			name:          "login unauthorized",
			method:        http.MethodPost,
			target:        "/login",
			handlerStatus: http.StatusUnauthorized,
			checkLogContains: []string{
				`"status":401`,
				`"size":0`,
			},
		},
		{
			name:            "query preserved in uri",
			method:          http.MethodDelete,
			target:          "/post/delete/7?soft=true",
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"uri":"/post/delete/7?soft=true"`,
			},
		},
		{
			name:            "not found",
			method:          http.MethodGet,
			target:          "/nope",
			handlerStatus:   http.StatusNotFound,
			handlerResponse: "Cannot GET /nope",
			checkLogContains: []string{
				`"status":404`,
				`"duration":`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.target, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
	assert.Contains(t, logBuf.String(), `"size":1024`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))
	})
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
