// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/http-contracts/internal/decoder"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/internal/validators"
	"github.com/MKhiriev/http-contracts/models"
)

// bodyChecker decodes a request body with its detected encoding and checks
// the result against an endpoint's required fields.
type bodyChecker struct {
	validator validators.Validator
}

func newBodyChecker(validator validators.Validator) *bodyChecker {
	return &bodyChecker{validator: validator}
}

// check decodes req.Body and validates it. A decode error is logged and the
// fields recovered from the body, possibly none, are validated as usual.
func (b *bodyChecker) check(ctx context.Context, req models.Request, required ...string) models.ValidationResult {
	log := logger.FromContext(ctx)

	fields, err := decoder.Decode(req.Body.Bytes, req.Body.Encoding)
	if err != nil {
		log.Warn().Err(err).
			Stringer("encoding", req.Body.Encoding).
			Str("content_type", req.Body.ContentType).
			Msg("request body could not be decoded")
	}

	if err := b.validator.Validate(ctx, fields, required...); err != nil {
		var missing *validators.MissingFieldError
		if errors.As(err, &missing) {
			log.Debug().Str("field", missing.Field).Msg("required field missing")
			return models.Invalid(missing.Field)
		}
		log.Err(err).Msg("unexpected validation error")
		return models.Invalid(firstOf(required))
	}

	return models.Valid(fields)
}

func firstOf(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
