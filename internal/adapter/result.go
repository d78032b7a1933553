// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"mime"
)

// Result is what the server answered to one request.
type Result struct {
	Status      int
	ContentType string
	Body        []byte
}

// MediaType returns the content type without parameters, or the raw value
// when it cannot be parsed.
func (r Result) MediaType() string {
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return r.ContentType
	}
	return mediaType
}

// Text returns the body as a string.
func (r Result) Text() string {
	return string(r.Body)
}

// DecodeJSON unmarshals the body into v.
func (r Result) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("error decoding %d response body: %w", r.Status, err)
	}
	return nil
}
