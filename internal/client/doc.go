// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the probe application runtime.
//
// It runs the contract scenarios against a server once, logs a verdict per
// scenario and reports whether every status matched.
package client
