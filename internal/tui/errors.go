// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/food-catalog/internal/adapter"
	"github.com/MKhiriev/food-catalog/internal/validators"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns adapter errors into one-line messages for the
// status area.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var rejected *validators.RejectedError
	switch {
	case errors.As(err, &rejected):
		return "Rejected: " + rejected.Field + " " + rejected.Reason
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Access denied"
	case errors.Is(err, adapter.ErrNotFound):
		return "Item not found"
	case errors.Is(err, adapter.ErrUnavailable):
		return "Catalog is temporarily unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unreachable"
	}

	return err.Error()
}
