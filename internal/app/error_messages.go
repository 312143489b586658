// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// food catalog transports.
//
// All Msg* constants are client-facing message strings written into HTTP
// response bodies and gRPC status messages. Internal error details never
// leave the server; callers pick one of these instead.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgItemRejected is returned when a candidate fails validation. The
	// offending field and reason travel alongside it.
	MsgItemRejected = "item rejected"

	// MsgAccessDenied is returned when a mutation is attempted without a
	// privileged session, or when login credentials do not match.
	MsgAccessDenied = "access denied"

	// MsgItemNotFound is returned when no item has the requested id.
	MsgItemNotFound = "item not found"

	// MsgCatalogUnavailable is returned when the item store cannot be
	// reached.
	MsgCatalogUnavailable = "catalog is temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
