// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate].
var (
	// ErrInvalidServerConfigs indicates an out-of-range port, a negative
	// timeout or a non-positive body limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates an empty authorization secret or an
	// unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClientConfigs indicates a malformed base URL or a
	// non-positive client timeout.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
