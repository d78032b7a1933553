// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000", 10*time.Second)
//	resp, err := client.R().Get("/headers")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. Non-2xx responses are not
// treated as errors by resty, so callers inspect the status themselves.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		Client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}
