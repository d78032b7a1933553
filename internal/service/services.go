// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the endpoint logic. Each service composes the body
// decoder, the field validator and the token authorizer into a
// [models.Outcome]; choosing the status code is left to the status package.
package service

import (
	"github.com/MKhiriev/http-contracts/internal/config"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/internal/validators"
)

type Services struct {
	InfoService    InfoService
	ContactService ContactService
	AccountService AccountService
	AuthService    AuthService
	PostService    PostService
}

func NewServices(cfg config.App, logger *logger.Logger) *Services {
	fields := newBodyChecker(validators.NewFieldMapValidator())

	return &Services{
		InfoService:    NewInfoService(logger),
		ContactService: NewContactService(fields, logger),
		AccountService: NewAccountService(fields, logger),
		AuthService:    NewAuthService(cfg, logger),
		PostService:    NewPostService(fields, logger),
	}
}
