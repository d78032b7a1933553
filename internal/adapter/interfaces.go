// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the HTTP contract: a typed
// client with one method per endpoint and a probe that replays a fixed list
// of scenarios against a running server.
//
// Non-2xx statuses are part of the contract being probed, so they are
// returned as ordinary [Result] values. Only transport failures are errors.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/contract_client_mock.go -package=mock

// ContractClient calls the server's endpoints and reports what came back.
type ContractClient interface {
	Greeting(ctx context.Context) (Result, error)
	JSONGreeting(ctx context.Context) (Result, error)
	RawHeaders(ctx context.Context) (Result, error)
	Headers(ctx context.Context) (Result, error)

	// SubmitContact posts fields form-encoded to /contact.
	SubmitContact(ctx context.Context, fields map[string]string) (Result, error)
	// SubmitContactJSON posts fields as a JSON object to /contact_json.
	SubmitContactJSON(ctx context.Context, fields map[string]string) (Result, error)
	// CreateAccount posts fields as a JSON object to /status_codes.
	CreateAccount(ctx context.Context, fields map[string]string) (Result, error)

	// Login sends token in x-auth-token. An empty token omits the header.
	Login(ctx context.Context, token string) (Result, error)

	CreatePost(ctx context.Context, id string, fields map[string]string) (Result, error)
	DeletePost(ctx context.Context, id string) (Result, error)

	// Do sends an arbitrary request with no body, for unrouted paths.
	Do(ctx context.Context, method, path string) (Result, error)
}
