// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"

	"github.com/MKhiriev/http-contracts/internal/config"
	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// expectedToken is the configured secret. Read-only after construction.
	expectedToken string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService bound to the secret in cfg.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		expectedToken: cfg.AuthToken,
		logger:        logger,
	}
}

// Authorize classifies token against the configured secret.
func (a *authService) Authorize(ctx context.Context, token string) models.AuthResult {
	return Authorize(token, a.expectedToken)
}

// Login serves POST /login. Exactly one header, x-auth-token, is examined.
func (a *authService) Login(ctx context.Context, req models.Request) models.Outcome {
	log := logger.FromContext(ctx)

	token, _ := req.Headers.Get(headerAuthToken)

	switch result := a.Authorize(ctx, token); result {
	case models.Authorized:
		log.Info().Msg("login authorized")
		return models.Success(models.TextBody(msgLoggedIn))
	case models.NoToken:
		log.Warn().Stringer("auth", result).Msg("login without token")
		return models.AuthFailed(result, models.TextBody(msgNoToken))
	default:
		log.Warn().Stringer("auth", result).Msg("login with wrong token")
		return models.AuthFailed(result, models.TextBody(msgNotAuthorized))
	}
}

// Authorize compares token with expected by exact byte equality, without
// trimming or case folding. An empty token is NoToken regardless of expected.
func Authorize(token, expected string) models.AuthResult {
	if token == "" {
		return models.NoToken
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		return models.InvalidToken
	}
	return models.Authorized
}
