// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Message is the single-field document used for greetings, confirmations and
// structured error bodies.
type Message struct {
	Msg string `json:"msg"`
}

// Contact echoes a submitted contact form back to the caller.
type Contact struct {
	// ContentType is the literal Content-Type header the client sent.
	ContentType string `json:"content_type"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// Post echoes the identifier and title of a created post.
type Post struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// HeaderSubset is the named header selection returned by GET /headers.
// Headers the client did not send are omitted.
type HeaderSubset struct {
	Host           string `json:"host,omitempty"`
	UserAgent      string `json:"user_agent,omitempty"`
	Accept         string `json:"accept,omitempty"`
	AcceptEncoding string `json:"accept_encoding,omitempty"`
	Connection     string `json:"connection,omitempty"`
}
