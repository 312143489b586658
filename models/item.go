// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is a single catalog entry as stored in the "foods" table.
// Items are immutable once created; the only mutation is full deletion.
type Item struct {
	// ID is the opaque unique identifier assigned by the store at insertion.
	ID string `json:"id"`

	// Name is the display name of the item. Never empty after validation.
	Name string `json:"name"`

	// Category is the label as stored. Legacy rows may hold localized or
	// decorated labels, so readers classify it through category.Normalize
	// instead of comparing it directly.
	Category string `json:"category"`

	// Calorie is the energy value in kcal. Nil means "unknown", not zero.
	Calorie *float64 `json:"calorie"`

	// Description is optional free text.
	Description *string `json:"description"`

	// Image is an optional absolute http/https URL.
	Image *string `json:"image"`

	// CreatedAt is assigned at insertion and drives the default
	// most-recent-first ordering.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "foods"
}

// NewItem holds the validated, normalized fields of an item that is about
// to be inserted. The store assigns ID and CreatedAt.
type NewItem struct {
	Name        string
	Category    Kind
	Calorie     *float64
	Description *string
	Image       *string
}

// ClassifiedItem pairs a stored item with the category it resolves to.
type ClassifiedItem struct {
	Item
	Kind Kind `json:"kind"`
}

// Counts is the aggregate shown next to the catalog filter.
// Fruit + Vegetable never exceeds Total; the difference is the number of
// items whose category resolves to KindUnknown.
type Counts struct {
	Total     int `json:"total"`
	Fruit     int `json:"fruit"`
	Vegetable int `json:"vegetable"`
}

// CatalogView is a filtered listing together with the counts computed
// from the same store read.
type CatalogView struct {
	Selector Selector         `json:"selector"`
	Items    []ClassifiedItem `json:"items"`
	Counts   Counts           `json:"counts"`
}
