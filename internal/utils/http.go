// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the HTTP server and the
// probe client: response writing, the resty client wrapper and trace id
// generation.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/http-contracts/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Message{Msg: "Post 1 deleted."}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", models.ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes text verbatim as an HTML document with the given status.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", models.ContentTypeText)
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}

// WriteResponse writes resp using the serialization implied by its body kind.
func WriteResponse(w http.ResponseWriter, resp models.Response) (int, error) {
	if resp.Body.Kind == models.BodyDocument {
		return WriteJSON(w, resp.Body.Document, resp.Status)
	}
	return WriteText(w, resp.Body.Text, resp.Status)
}
