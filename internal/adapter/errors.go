// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrInvalidBaseURL is returned by NewHTTPContractClient for a base URL
	// without scheme or host.
	ErrInvalidBaseURL = errors.New("invalid base url")

	// ErrRequestFailed wraps transport failures: no response was received.
	ErrRequestFailed = errors.New("request failed")
)
