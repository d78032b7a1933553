// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/http-contracts/models"
	"github.com/stretchr/testify/assert"
)

func TestPostService_CreatePost(t *testing.T) {
	svc := NewPostService(newTestBodyChecker(), nopLogger())

	t.Run("with title", func(t *testing.T) {
		req := newModelRequest(t, testRequest{
			method:      http.MethodPut,
			contentType: jsonType,
			body:        `{"title":"Hello"}`,
			params:      map[string]string{"id": "42"},
		})

		out := svc.CreatePost(context.Background(), req)

		assert.Equal(t, models.Success(models.DocumentBody(models.Post{ID: "42", Title: "Hello"})), out)
	})

	t.Run("without title", func(t *testing.T) {
		req := newModelRequest(t, testRequest{
			method:      http.MethodPut,
			contentType: jsonType,
			body:        `{}`,
			params:      map[string]string{"id": "42"},
		})

		out := svc.CreatePost(context.Background(), req)

		assert.Equal(t, models.ValidationFailed("title", models.TextBody("Title is required.")), out)
	})
}

func TestPostService_DeletePost_IgnoresBody(t *testing.T) {
	svc := NewPostService(newTestBodyChecker(), nopLogger())
	want := models.Success(models.DocumentBody(models.Message{Msg: "Post 7 deleted."}))

	for _, body := range []string{"", `{"title":{"nested":true}}`, "garbage"} {
		req := newModelRequest(t, testRequest{
			method:      http.MethodDelete,
			contentType: jsonType,
			body:        body,
			params:      map[string]string{"id": "7"},
		})

		assert.Equal(t, want, svc.DeletePost(context.Background(), req))
	}
}
