// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Encoding is the body encoding selected for a request. It is detected once,
// when the [Request] is built, and never re-sniffed by endpoint logic.
type Encoding int

const (
	// EncodingNone means the request declared no Content-Type.
	EncodingNone Encoding = iota
	// EncodingForm is application/x-www-form-urlencoded.
	EncodingForm
	// EncodingJSON is application/json or any +json media type.
	EncodingJSON
	// EncodingUnknown is any other (or malformed) Content-Type.
	EncodingUnknown
)

func (e Encoding) String() string {
	switch e {
	case EncodingNone:
		return "none"
	case EncodingForm:
		return "form"
	case EncodingJSON:
		return "json"
	default:
		return "unknown"
	}
}

// HeaderPair is a single header line as received: one name, one value.
type HeaderPair struct {
	Name  string
	Value string
}

// HeaderReader gives endpoint logic read access to request headers.
type HeaderReader interface {
	// Get returns the value of the named header. The lookup is
	// case-insensitive; ok is false when the header was not sent.
	Get(name string) (value string, ok bool)

	// Raw returns every header line without deduplication.
	Raw() []HeaderPair
}

// RawBody is the buffered request body together with its declared encoding.
type RawBody struct {
	Bytes       []byte
	ContentType string
	Encoding    Encoding
}

// Request is the typed view of an incoming HTTP request handed to endpoint
// logic. It is built per request and discarded after the response is written.
type Request struct {
	Method     string
	Path       string
	Headers    HeaderReader
	Body       RawBody
	PathParams map[string]string
}

// PathParam returns the value bound to the named path segment, or "".
func (r Request) PathParam(name string) string {
	return r.PathParams[name]
}
