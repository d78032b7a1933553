// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/http-contracts/internal/config"
	httphandler "github.com/MKhiriev/http-contracts/internal/handler/http"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/internal/service"
	"github.com/MKhiriev/http-contracts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "12345"

// newContractServer starts the real router in-process.
func newContractServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.Nop()
	services := service.NewServices(config.App{AuthToken: testToken}, log)
	srv := httptest.NewServer(httphandler.NewHandler(services, config.Server{MaxBodyBytes: 1 << 20}, log).Init())
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string) ContractClient {
	t.Helper()
	c, err := NewHTTPContractClient(config.ClientConfig{BaseURL: baseURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:3000", want: "http://localhost:3000"},
		{name: "trailing slash trimmed", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "scheme added", raw: "localhost:3000", want: "http://localhost:3000"},
		{name: "surrounding spaces", raw: "  localhost:3000 ", want: "http://localhost:3000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPContractClient_InvalidBaseURL(t *testing.T) {
	c, err := NewHTTPContractClient(config.ClientConfig{BaseURL: " "}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidBaseURL)
	assert.Nil(t, c)
}

func TestContractClient_Endpoints(t *testing.T) {
	c := newTestClient(t, newContractServer(t).URL)
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func() (Result, error)
		wantCode  int
		wantMedia string
		wantText  string
	}{
		{
			name:      "greeting",
			call:      func() (Result, error) { return c.Greeting(ctx) },
			wantCode:  http.StatusOK,
			wantMedia: "text/html",
			wantText:  "<h1>Hello from http-contracts</h1>",
		},
		{
			name:      "contact form",
			call:      func() (Result, error) { return c.SubmitContact(ctx, map[string]string{"name": "a", "email": "b", "phone": "c"}) },
			wantCode:  http.StatusOK,
			wantMedia: "application/json",
		},
		{
			name:      "contact json missing",
			call:      func() (Result, error) { return c.SubmitContactJSON(ctx, map[string]string{"name": "a"}) },
			wantCode:  http.StatusBadRequest,
			wantMedia: "application/json",
		},
		{
			name:      "create account",
			call:      func() (Result, error) { return c.CreateAccount(ctx, map[string]string{"name": "Ada"}) },
			wantCode:  http.StatusCreated,
			wantMedia: "text/html",
			wantText:  "Thank you Ada. Your account has been created.",
		},
		{
			name:      "login without token",
			call:      func() (Result, error) { return c.Login(ctx, "") },
			wantCode:  http.StatusBadRequest,
			wantMedia: "text/html",
			wantText:  "No token.",
		},
		{
			name:      "login",
			call:      func() (Result, error) { return c.Login(ctx, testToken) },
			wantCode:  http.StatusOK,
			wantMedia: "text/html",
			wantText:  "Logged in.",
		},
		{
			name:      "create post without title",
			call:      func() (Result, error) { return c.CreatePost(ctx, "5", nil) },
			wantCode:  http.StatusBadRequest,
			wantMedia: "text/html",
			wantText:  "Title is required.",
		},
		{
			name:      "unrouted",
			call:      func() (Result, error) { return c.Do(ctx, http.MethodPatch, "/post/create/5") },
			wantCode:  http.StatusNotFound,
			wantMedia: "text/html",
			wantText:  "Cannot PATCH /post/create/5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call()

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, got.Status)
			assert.Equal(t, tt.wantMedia, got.MediaType())
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, got.Text())
			}
		})
	}
}

func TestContractClient_DecodedDocuments(t *testing.T) {
	c := newTestClient(t, newContractServer(t).URL)
	ctx := context.Background()

	res, err := c.SubmitContact(ctx, map[string]string{"name": "Jane", "email": "j@e.com", "phone": "1"})
	require.NoError(t, err)
	var contact models.Contact
	require.NoError(t, res.DecodeJSON(&contact))
	assert.Equal(t, models.Contact{ContentType: "application/x-www-form-urlencoded", Name: "Jane", Email: "j@e.com", Phone: "1"}, contact)

	res, err = c.CreatePost(ctx, "42", map[string]string{"title": "Hi"})
	require.NoError(t, err)
	var post models.Post
	require.NoError(t, res.DecodeJSON(&post))
	assert.Equal(t, models.Post{ID: "42", Title: "Hi"}, post)

	res, err = c.DeletePost(ctx, "42")
	require.NoError(t, err)
	var msg models.Message
	require.NoError(t, res.DecodeJSON(&msg))
	assert.Equal(t, "Post 42 deleted.", msg.Msg)

	res, err = c.Headers(ctx)
	require.NoError(t, err)
	var subset models.HeaderSubset
	require.NoError(t, res.DecodeJSON(&subset))
	assert.NotEmpty(t, subset.Host)
	assert.NotEmpty(t, subset.UserAgent)

	res, err = c.RawHeaders(ctx)
	require.NoError(t, err)
	var raw []string
	require.NoError(t, res.DecodeJSON(&raw))
	require.NotEmpty(t, raw)
	assert.Equal(t, "Host", raw[0])
	assert.Zero(t, len(raw)%2)
}

func TestContractClient_LoginOmitsEmptyToken(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[http.CanonicalHeaderKey(headerAuthToken)]
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Login(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, present)
}

func TestContractClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(t, url).Greeting(context.Background())

	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestResult_MediaTypeFallsBackToRaw(t *testing.T) {
	assert.Equal(t, "application/json", Result{ContentType: "application/json; charset=utf-8"}.MediaType())
	assert.Equal(t, ";;", Result{ContentType: ";;"}.MediaType())
}

func TestResult_DecodeJSONError(t *testing.T) {
	var v map[string]string
	assert.Error(t, Result{Status: 200, Body: []byte("<h1>")}.DecodeJSON(&v))
}
