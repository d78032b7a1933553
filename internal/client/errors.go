// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrContractViolated is returned by Run when at least one scenario did not
// get the expected status.
var ErrContractViolated = errors.New("contract violated")
