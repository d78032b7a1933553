// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/http-contracts/internal/config"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/internal/service"
	"github.com/MKhiriev/http-contracts/internal/utils"
)

type Handler struct {
	services *service.Services

	maxBodyBytes int64
	traceIDs     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		maxBodyBytes: cfg.MaxBodyBytes,
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
}
