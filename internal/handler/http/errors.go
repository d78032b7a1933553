// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrBodyRead is logged when a request body cannot be read or exceeds the
// configured limit. The request is then served as if it had no body.
var ErrBodyRead = errors.New("error reading request body")
