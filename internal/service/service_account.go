// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/models"
)

type accountService struct {
	fields *bodyChecker
	logger *logger.Logger
}

func NewAccountService(fields *bodyChecker, logger *logger.Logger) AccountService {
	return &accountService{fields: fields, logger: logger}
}

// CreateAccount serves POST /status_codes. Nothing is stored; a request with
// a name is confirmed with creation semantics.
func (s *accountService) CreateAccount(ctx context.Context, req models.Request) models.Outcome {
	result := s.fields.check(ctx, req, fieldName)
	if !result.Valid {
		return models.ValidationFailed(result.Missing, models.DocumentBody(models.Message{Msg: msgNameRequired}))
	}

	name := result.Fields[fieldName]
	logger.FromContext(ctx).Info().Str("name", name).Msg("account accepted")

	return models.Created(models.TextBody(fmt.Sprintf(msgAccountCreated, name)))
}
