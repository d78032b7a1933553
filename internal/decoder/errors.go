// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBody is returned when a body cannot be decoded with its
	// declared encoding.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrNestedValue is returned when a JSON body holds an array or object
	// value. It wraps [ErrInvalidBody].
	ErrNestedValue = fmt.Errorf("%w: nested values are not supported", ErrInvalidBody)
)
