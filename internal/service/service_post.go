// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/http-contracts/internal/logger"
	"github.com/MKhiriev/http-contracts/models"
)

type postService struct {
	fields *bodyChecker
	logger *logger.Logger
}

func NewPostService(fields *bodyChecker, logger *logger.Logger) PostService {
	return &postService{fields: fields, logger: logger}
}

// CreatePost serves PUT /post/create/{id}: it requires a title and echoes
// the path id with it.
func (s *postService) CreatePost(ctx context.Context, req models.Request) models.Outcome {
	result := s.fields.check(ctx, req, fieldTitle)
	if !result.Valid {
		return models.ValidationFailed(result.Missing, models.TextBody(msgTitleRequired))
	}

	return models.Success(models.DocumentBody(models.Post{
		ID:    req.PathParam(paramID),
		Title: result.Fields[fieldTitle],
	}))
}

// DeletePost serves DELETE /post/delete/{id}. The body is never read.
func (s *postService) DeletePost(ctx context.Context, req models.Request) models.Outcome {
	id := req.PathParam(paramID)
	logger.FromContext(ctx).Info().Str("id", id).Msg("post deletion confirmed")

	return models.Success(models.DocumentBody(models.Message{Msg: fmt.Sprintf(msgPostDeleted, id)}))
}
