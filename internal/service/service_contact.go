// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/models"
)

type contactService struct {
	fields *bodyChecker
	logger *logger.Logger
}

func NewContactService(fields *bodyChecker, logger *logger.Logger) ContactService {
	return &contactService{fields: fields, logger: logger}
}

// SubmitContact serves POST /contact. A missing field yields a text body.
func (s *contactService) SubmitContact(ctx context.Context, req models.Request) models.Outcome {
	return s.submit(ctx, req, models.TextBody(msgContactMissing))
}

// SubmitContactJSON serves POST /contact_json. A missing field yields a
// {msg} document.
func (s *contactService) SubmitContactJSON(ctx context.Context, req models.Request) models.Outcome {
	return s.submit(ctx, req, models.DocumentBody(models.Message{Msg: msgContactJSONMissing}))
}

func (s *contactService) submit(ctx context.Context, req models.Request, failure models.Body) models.Outcome {
	result := s.fields.check(ctx, req, contactFields...)
	if !result.Valid {
		return models.ValidationFailed(result.Missing, failure)
	}

	contentType, _ := req.Headers.Get(headerContentType)

	return models.Success(models.DocumentBody(models.Contact{
		ContentType: contentType,
		Name:        result.Fields[fieldName],
		Email:       result.Fields[fieldEmail],
		Phone:       result.Fields[fieldPhone],
	}))
}
