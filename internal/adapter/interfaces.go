// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the food catalog HTTP API.
//
// [CatalogAdapter] decouples the CLI and the terminal browser from the
// transport. Non-2xx responses are mapped to the sentinel errors in
// errors.go so callers can use [errors.Is] without knowing status codes;
// rejected submissions come back as *[validators.RejectedError].
package adapter

import (
	"context"

	"github.com/MKhiriev/food-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatalogAdapter defines communication with the catalog server.
type CatalogAdapter interface {
	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	// Browse fetches the items matching sel together with the counts. When
	// the server reports its store unavailable, the returned view is still
	// well-formed (no items) and the error wraps [ErrUnavailable].
	Browse(ctx context.Context, sel models.Selector) (models.CatalogView, error)

	// Counts fetches the total, fruit and vegetable counts.
	Counts(ctx context.Context) (models.Counts, error)

	// Get fetches a single item. Returns [ErrNotFound] (wrapped) for an
	// unknown id.
	Get(ctx context.Context, id string) (models.ClassifiedItem, error)

	// Add submits a candidate using creds and returns the stored item.
	Add(ctx context.Context, creds models.Credentials, candidate models.ItemCandidate) (models.ClassifiedItem, error)

	// Delete removes the item with id using creds.
	Delete(ctx context.Context, creds models.Credentials, id string) error

	// Login checks creds against the server and returns the session they
	// grant. Wrong credentials yield [ErrUnauthorized].
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Logout returns the anonymous session acknowledged by the server.
	Logout(ctx context.Context) (models.Session, error)
}
