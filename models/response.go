// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// ContentTypeText is used for [BodyText] responses.
	ContentTypeText = "text/html; charset=utf-8"
	// ContentTypeJSON is used for [BodyDocument] responses.
	ContentTypeJSON = "application/json"
)

// Response is the final status and body written for a request.
type Response struct {
	Status int
	Body   Body
}

// ContentType returns the content type implied by the body kind.
func (r Response) ContentType() string {
	if r.Body.Kind == BodyDocument {
		return ContentTypeJSON
	}
	return ContentTypeText
}
