// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidAuthorizationHeader is logged when an "Authorization"
	// header is present but is not a well-formed Basic credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
