// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/http-contracts/internal/decoder"
	"github.com/MKhiriev/http-contracts/internal/headers"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/internal/validators"
	"github.com/MKhiriev/http-contracts/models"
)

const (
	formType = "application/x-www-form-urlencoded"
	jsonType = "application/json"
)

// testRequest describes a request handed to a service under test.
type testRequest struct {
	method      string
	path        string
	contentType string
	body        string
	header      map[string]string
	params      map[string]string
}

func newModelRequest(t *testing.T, tr testRequest) models.Request {
	t.Helper()

	method := tr.method
	if method == "" {
		method = http.MethodPost
	}
	path := tr.path
	if path == "" {
		path = "/"
	}

	r := httptest.NewRequest(method, path, strings.NewReader(tr.body))
	if tr.contentType != "" {
		r.Header.Set("Content-Type", tr.contentType)
	}
	for k, v := range tr.header {
		r.Header.Set(k, v)
	}

	return models.Request{
		Method:  method,
		Path:    path,
		Headers: headers.New(r),
		Body: models.RawBody{
			Bytes:       []byte(tr.body),
			ContentType: tr.contentType,
			Encoding:    decoder.DetectEncoding(tr.contentType),
		},
		PathParams: tr.params,
	}
}

func newTestBodyChecker() *bodyChecker {
	return newBodyChecker(validators.NewFieldMapValidator())
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}
