// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/http-contracts/internal/headers"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/models"
)

type infoService struct {
	logger *logger.Logger
}

func NewInfoService(logger *logger.Logger) InfoService {
	return &infoService{logger: logger}
}

// Greeting returns the text greeting served on GET /.
func (s *infoService) Greeting(ctx context.Context) models.Outcome {
	return models.Success(models.TextBody(greetingHTML))
}

// JSONGreeting returns the same greeting as a {msg} document.
func (s *infoService) JSONGreeting(ctx context.Context) models.Outcome {
	return models.Success(models.DocumentBody(models.Message{Msg: greetingText}))
}

// RawHeaders returns every received header line flattened into
// [name, value, ...], duplicates included.
func (s *infoService) RawHeaders(ctx context.Context, req models.Request) models.Outcome {
	raw := req.Headers.Raw()
	logger.FromContext(ctx).Debug().Int("pairs", len(raw)).Msg("raw headers collected")

	return models.Success(models.DocumentBody(headers.Flatten(raw)))
}

// Headers returns the named subset of request headers, one value per name.
func (s *infoService) Headers(ctx context.Context, req models.Request) models.Outcome {
	get := func(name string) string {
		v, _ := req.Headers.Get(name)
		return v
	}

	return models.Success(models.DocumentBody(models.HeaderSubset{
		Host:           get("Host"),
		UserAgent:      get("User-Agent"),
		Accept:         get("Accept"),
		AcceptEncoding: get("Accept-Encoding"),
		Connection:     get("Connection"),
	}))
}
