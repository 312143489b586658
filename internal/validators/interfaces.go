// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the acceptance rules for submitted catalog
// items.
//
// A Validator is injected into the service layer (see the validation
// wrapper in package service) so transports never validate on their own.
// Rejections are reported as *RejectedError values that name the offending
// field; all of them match ErrItemRejected with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
