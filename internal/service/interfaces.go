// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/http-contracts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// InfoService serves the read-only endpoints that describe the request itself.
type InfoService interface {
	Greeting(ctx context.Context) models.Outcome
	JSONGreeting(ctx context.Context) models.Outcome
	RawHeaders(ctx context.Context, req models.Request) models.Outcome
	Headers(ctx context.Context, req models.Request) models.Outcome
}

// ContactService validates contact submissions. Both variants require name,
// email and phone; they differ only in the shape of the failure body.
type ContactService interface {
	SubmitContact(ctx context.Context, req models.Request) models.Outcome
	SubmitContactJSON(ctx context.Context, req models.Request) models.Outcome
}

// AccountService handles account creation requests.
type AccountService interface {
	CreateAccount(ctx context.Context, req models.Request) models.Outcome
}

// AuthService checks the x-auth-token header against the configured secret.
type AuthService interface {
	Authorize(ctx context.Context, token string) models.AuthResult
	Login(ctx context.Context, req models.Request) models.Outcome
}

// PostService handles the parameterized post endpoints.
type PostService interface {
	CreatePost(ctx context.Context, req models.Request) models.Outcome
	DeletePost(ctx context.Context, req models.Request) models.Outcome
}
