// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/http-contracts/models"
	"github.com/go-playground/validator/v10"
)

// requiredTag is the go-playground rule applied to every required field:
// the value must be present and non-empty.
const requiredTag = "required"

var presence = validator.New()

// Check validates fields against a rule map built from required and reports
// the first failing field in declaration order.
func Check(fields models.FieldMap, required ...string) models.ValidationResult {
	return CheckCtx(context.Background(), fields, required...)
}

// CheckCtx is [Check] with a context passed through to the validator.
func CheckCtx(ctx context.Context, fields models.FieldMap, required ...string) models.ValidationResult {
	if len(required) == 0 {
		return models.Valid(fields)
	}

	data := make(map[string]any, len(fields))
	for name, value := range fields {
		data[name] = value
	}
	rules := make(map[string]any, len(required))
	for _, name := range required {
		rules[name] = requiredTag
	}

	failed := presence.ValidateMapCtx(ctx, data, rules)
	for _, name := range required {
		if _, ok := failed[name]; ok {
			return models.Invalid(name)
		}
	}
	return models.Valid(fields)
}

// FieldMapValidator implements [Validator] for decoded request bodies.
type FieldMapValidator struct{}

// NewFieldMapValidator constructs a FieldMapValidator and returns it as the
// Validator interface.
func NewFieldMapValidator() Validator {
	return &FieldMapValidator{}
}

// Validate checks that every named field is present and non-empty in obj,
// which must be a [models.FieldMap]. It returns a *MissingFieldError for the
// first missing field, or ErrUnsupportedType for any other input.
func (v *FieldMapValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var fieldMap models.FieldMap
	switch value := obj.(type) {
	case models.FieldMap:
		fieldMap = value
	case map[string]string:
		fieldMap = value
	default:
		return ErrUnsupportedType
	}

	if result := CheckCtx(ctx, fieldMap, fields...); !result.Valid {
		return &MissingFieldError{Field: result.Missing}
	}
	return nil
}
