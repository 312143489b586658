// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package category classifies free-text category labels into the
// two-valued catalog taxonomy and parses listing selectors.
//
// Stored labels are matched tolerantly (case-insensitive substring search
// over English and the legacy Turkish vocabulary) because historical rows
// contain decorated or localized labels. New items are held to the closed
// enumeration returned by [ParseCanonical].
package category

import (
	"strings"

	"github.com/MKhiriev/food-catalog/models"
)

var (
	fruitSynonyms     = []string{"fruit", "meyve"}
	vegetableSynonyms = []string{"vegetable", "sebze"}
)

// Normalize maps a raw category label to its canonical kind.
// Labels containing a fruit synonym resolve to fruit even when a vegetable
// synonym is present as well. Anything else is KindUnknown.
func Normalize(raw string) models.Kind {
	label := strings.ToLower(raw)

	if containsAny(label, fruitSynonyms) {
		return models.KindFruit
	}
	if containsAny(label, vegetableSynonyms) {
		return models.KindVegetable
	}

	return models.KindUnknown
}

// ParseSelector maps a filter token to a selector. Unrecognized tokens
// degrade to SelectorAll so a bad filter never breaks the listing.
func ParseSelector(token string) models.Selector {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "all", "tümü", "tumu", "hepsi":
		return models.SelectorAll
	case "fruit", "fruits", "meyve", "meyveler":
		return models.SelectorFruit
	case "vegetable", "vegetables", "veg", "sebze", "sebzeler":
		return models.SelectorVegetable
	default:
		return models.SelectorAll
	}
}

// ParseCanonical accepts only the canonical labels of the taxonomy
// (plus the legacy single-word tokens the admin form used to submit) and
// returns the kind to store. ok is false for anything else.
func ParseCanonical(token string) (models.Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "fruit", "meyve":
		return models.KindFruit, true
	case "vegetable", "sebze":
		return models.KindVegetable, true
	default:
		return models.KindUnknown, false
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
