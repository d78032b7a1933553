// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BodyKind selects how a response body is serialized.
type BodyKind int

const (
	// BodyText is written verbatim as text/html.
	BodyText BodyKind = iota
	// BodyDocument is serialized as a JSON document.
	BodyDocument
)

// Body is a response payload: either a literal string or a structured document.
type Body struct {
	Kind     BodyKind
	Text     string
	Document any
}

// TextBody builds a literal string body.
func TextBody(text string) Body {
	return Body{Kind: BodyText, Text: text}
}

// DocumentBody builds a structured body serialized as JSON.
func DocumentBody(doc any) Body {
	return Body{Kind: BodyDocument, Document: doc}
}

// OutcomeKind tags the variant held by an [Outcome].
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeValidationFailure
	OutcomeAuthFailure
	OutcomeNotFound
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationFailure:
		return "validation_failure"
	case OutcomeAuthFailure:
		return "auth_failure"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Semantics distinguishes creation from every other kind of success.
type Semantics int

const (
	// SemanticsRead covers read, update and delete successes.
	SemanticsRead Semantics = iota
	// SemanticsCreated marks a success that created a resource.
	SemanticsCreated
)

// Outcome is what endpoint logic decided for a request, before a status code
// is chosen. Only the fields relevant to Kind are set.
type Outcome struct {
	Kind      OutcomeKind
	Semantics Semantics
	Body      Body

	// MissingField is set for OutcomeValidationFailure.
	MissingField string
	// Auth is set for OutcomeAuthFailure.
	Auth AuthResult
}

// Success is a read/update/delete success.
func Success(body Body) Outcome {
	return Outcome{Kind: OutcomeSuccess, Semantics: SemanticsRead, Body: body}
}

// Created is a success that created a resource.
func Created(body Body) Outcome {
	return Outcome{Kind: OutcomeSuccess, Semantics: SemanticsCreated, Body: body}
}

// ValidationFailed reports the first missing required field.
func ValidationFailed(missingField string, body Body) Outcome {
	return Outcome{Kind: OutcomeValidationFailure, MissingField: missingField, Body: body}
}

// AuthFailed reports a rejected token.
func AuthFailed(result AuthResult, body Body) Outcome {
	return Outcome{Kind: OutcomeAuthFailure, Auth: result, Body: body}
}

// NotFound reports a request that matched no endpoint.
func NotFound(body Body) Outcome {
	return Outcome{Kind: OutcomeNotFound, Body: body}
}
