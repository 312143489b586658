// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/food-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CatalogServiceWrapper

// CatalogService answers catalog queries and applies the two mutations the
// catalog supports. Reads are public; Submit and Delete require a
// privileged session and fail with ErrDenied otherwise.
type CatalogService interface {
	// ListAll returns every item, most recent first. On a store outage the
	// slice is empty (never nil) and the error wraps store.ErrStoreUnavailable.
	ListAll(ctx context.Context) ([]models.ClassifiedItem, error)
	// ListByCategory returns the items matching sel, in ListAll order.
	ListByCategory(ctx context.Context, sel models.Selector) ([]models.ClassifiedItem, error)
	// Counts returns totals computed from a single store read.
	Counts(ctx context.Context) (models.Counts, error)
	// Get returns one item or an error wrapping store.ErrItemNotFound.
	Get(ctx context.Context, id string) (models.ClassifiedItem, error)
	// Browse returns the filtered listing together with counts from the
	// same snapshot.
	Browse(ctx context.Context, sel models.Selector) (models.CatalogView, error)

	// Submit validates and stores a new item.
	Submit(ctx context.Context, session models.Session, candidate models.ItemCandidate) (models.ClassifiedItem, error)
	// Delete removes an item. deleted is false when the id was unknown.
	Delete(ctx context.Context, session models.Session, id string) (deleted bool, err error)
}

// AccessService checks presented credentials against the configured
// privileged identity.
type AccessService interface {
	// Authorize returns a privileged session on success, or the anonymous
	// session together with ErrDenied.
	Authorize(ctx context.Context, credentials models.Credentials) (models.Session, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CatalogServiceWrapper defines middleware composition for CatalogService.
// Implementations wrap an existing CatalogService to add behavior such as
// logging or validating.
type CatalogServiceWrapper interface {
	Wrap(CatalogService) CatalogService // returns a decorated CatalogService applying additional behavior
}
