// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/food-catalog/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "session", SessionCtxKey.String())
}

func TestGetSessionFromContext_Success(t *testing.T) {
	ctx := WithSession(context.Background(), models.Session{Privileged: true, Email: "admin@mail.co"})

	session, ok := GetSessionFromContext(ctx)

	assert.True(t, ok)
	assert.True(t, session.Privileged)
	assert.Equal(t, "admin@mail.co", session.Email)
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	session, ok := GetSessionFromContext(context.Background())

	assert.False(t, ok)
	assert.False(t, session.Privileged)
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "admin")

	session, ok := GetSessionFromContext(ctx)

	assert.False(t, ok)
	assert.Equal(t, models.Anonymous(), session)
}

func TestTraceIDAndTransport(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceIDFromContext(ctx))
	assert.Empty(t, GetTransportFromContext(ctx))

	ctx = WithTransport(WithTraceID(ctx, "trace-1"), "grpc")

	assert.Equal(t, "trace-1", GetTraceIDFromContext(ctx))
	assert.Equal(t, "grpc", GetTransportFromContext(ctx))
}
