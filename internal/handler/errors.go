// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when it is given no service layer
// to dispatch to. This is a wiring mistake and fails startup.
var errNoServices = errors.New("no services to build handlers from")
