// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request bodies against the fields an
// endpoint requires.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values, optionally
//     scoped to a list of named fields.
//   - Check: ordered, fail-fast required-field check producing a
//     [models.ValidationResult].
//
// The order of the required list is part of the contract: the first field in
// the list that is absent or empty is the one reported, so callers can surface
// that exact name.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input against the named fields.
	Validate(context.Context, any, ...string) error
}
