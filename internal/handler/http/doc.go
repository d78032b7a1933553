// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It registers the contract endpoints on a chi router, turns every incoming
// request into a [models.Request], hands it to the service layer and writes
// the resolved [models.Response]. Request tracing and access logging are
// handled by middleware in this package before requests reach an endpoint.
package http
