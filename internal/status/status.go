// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package status maps the outcome decided by endpoint logic to the HTTP
// status code and body written back to the client.
package status

import (
	"net/http"

	"github.com/MKhiriev/http-contracts/models"
)

// Resolve picks the status code for out and carries its body through
// unchanged.
//
//	validation failure       -> 400
//	auth failure, no token   -> 400
//	auth failure, bad token  -> 401
//	success, created         -> 201
//	success, anything else   -> 200
//	not found                -> 404
func Resolve(out models.Outcome) models.Response {
	return models.Response{Status: Code(out), Body: out.Body}
}

// Code returns the status code alone.
func Code(out models.Outcome) int {
	switch out.Kind {
	case models.OutcomeValidationFailure:
		return http.StatusBadRequest
	case models.OutcomeAuthFailure:
		if out.Auth == models.NoToken {
			return http.StatusBadRequest
		}
		return http.StatusUnauthorized
	case models.OutcomeSuccess:
		if out.Semantics == models.SemanticsCreated {
			return http.StatusCreated
		}
		return http.StatusOK
	case models.OutcomeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
