// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/http-contracts/internal/config"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	headerContentType = "Content-Type"
	headerAuthToken   = "x-auth-token"

	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json"
)

type httpContractClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPContractClient constructs the resty implementation of
// [ContractClient] for the server at cfg.BaseURL. A base URL given without a
// scheme is assumed to be http.
func NewHTTPContractClient(cfg config.ClientConfig, logger *logger.Logger) (ContractClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("contract client created")

	return &httpContractClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpContractClient) Greeting(ctx context.Context) (Result, error) {
	return c.send(c.client.R().SetContext(ctx), http.MethodGet, "/")
}

func (c *httpContractClient) JSONGreeting(ctx context.Context) (Result, error) {
	return c.send(c.client.R().SetContext(ctx), http.MethodGet, "/json_content_type")
}

func (c *httpContractClient) RawHeaders(ctx context.Context) (Result, error) {
	return c.send(c.client.R().SetContext(ctx), http.MethodGet, "/raw_headers")
}

func (c *httpContractClient) Headers(ctx context.Context) (Result, error) {
	return c.send(c.client.R().SetContext(ctx), http.MethodGet, "/headers")
}

func (c *httpContractClient) SubmitContact(ctx context.Context, fields map[string]string) (Result, error) {
	return c.send(c.formRequest(ctx, fields), http.MethodPost, "/contact")
}

func (c *httpContractClient) SubmitContactJSON(ctx context.Context, fields map[string]string) (Result, error) {
	return c.send(c.jsonRequest(ctx, fields), http.MethodPost, "/contact_json")
}

func (c *httpContractClient) CreateAccount(ctx context.Context, fields map[string]string) (Result, error) {
	return c.send(c.jsonRequest(ctx, fields), http.MethodPost, "/status_codes")
}

func (c *httpContractClient) Login(ctx context.Context, token string) (Result, error) {
	req := c.client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader(headerAuthToken, token)
	}
	return c.send(req, http.MethodPost, "/login")
}

func (c *httpContractClient) CreatePost(ctx context.Context, id string, fields map[string]string) (Result, error) {
	req := c.jsonRequest(ctx, fields).SetPathParam("id", id)
	return c.send(req, http.MethodPut, "/post/create/{id}")
}

func (c *httpContractClient) DeletePost(ctx context.Context, id string) (Result, error) {
	req := c.client.R().SetContext(ctx).SetPathParam("id", id)
	return c.send(req, http.MethodDelete, "/post/delete/{id}")
}

func (c *httpContractClient) Do(ctx context.Context, method, path string) (Result, error) {
	return c.send(c.client.R().SetContext(ctx), method, path)
}

func (c *httpContractClient) formRequest(ctx context.Context, fields map[string]string) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader(headerContentType, contentTypeForm).
		SetFormData(fields)
}

func (c *httpContractClient) jsonRequest(ctx context.Context, fields map[string]string) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader(headerContentType, contentTypeJSON).
		SetBody(fields)
}

func (c *httpContractClient) send(req *resty.Request, method, path string) (Result, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}

	result := Result{
		Status:      resp.StatusCode(),
		ContentType: resp.Header().Get(headerContentType),
		Body:        resp.Body(),
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", resp.Request.URL).
		Int("status", result.Status).
		Dur("duration", resp.Time()).
		Msg("contract call")

	return result, nil
}
