// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldMap is a decoded request body: flat field names mapped to string values.
type FieldMap map[string]string

// Get returns the value of the named field and whether it was present.
func (f FieldMap) Get(name string) (string, bool) {
	v, ok := f[name]
	return v, ok
}

// Has reports whether the named field is present and non-empty.
func (f FieldMap) Has(name string) bool {
	return f[name] != ""
}

// ValidationResult is the outcome of checking a FieldMap against a list of
// required fields. Missing is set only when Valid is false and names the first
// required field that was absent or empty.
type ValidationResult struct {
	Valid   bool
	Fields  FieldMap
	Missing string
}

// Valid reports a successful validation carrying the checked fields.
func Valid(fields FieldMap) ValidationResult {
	return ValidationResult{Valid: true, Fields: fields}
}

// Invalid reports a failed validation for the given missing field.
func Invalid(missing string) ValidationResult {
	return ValidationResult{Missing: missing}
}

// AuthResult is the outcome of checking a request token.
type AuthResult int

const (
	// NoToken means the token header was absent or empty.
	NoToken AuthResult = iota
	// InvalidToken means a token was sent but did not match.
	InvalidToken
	// Authorized means the token matched the configured secret.
	Authorized
)

func (a AuthResult) String() string {
	switch a {
	case NoToken:
		return "no_token"
	case InvalidToken:
		return "invalid_token"
	case Authorized:
		return "authorized"
	default:
		return "unknown"
	}
}
