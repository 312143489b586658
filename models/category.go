// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Kind is the canonical classification of an item's category label.
type Kind string

const (
	// KindFruit is the canonical label for fruit.
	KindFruit Kind = "fruit"
	// KindVegetable is the canonical label for vegetables.
	KindVegetable Kind = "vegetable"
	// KindUnknown is returned for labels that match neither vocabulary.
	// Unknown items appear only in unfiltered views and in Counts.Total.
	KindUnknown Kind = "unknown"
)

// String returns the label as stored.
func (k Kind) String() string {
	return string(k)
}

// Selector chooses which part of the catalog a listing shows.
type Selector string

const (
	SelectorAll       Selector = "all"
	SelectorFruit     Selector = "fruit"
	SelectorVegetable Selector = "vegetable"
)

// Matches reports whether an item of kind k belongs to the selection.
// SelectorAll is the identity filter.
func (s Selector) Matches(k Kind) bool {
	switch s {
	case SelectorFruit:
		return k == KindFruit
	case SelectorVegetable:
		return k == KindVegetable
	default:
		return true
	}
}
