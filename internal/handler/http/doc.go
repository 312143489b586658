// Package http implements the REST transport of the food catalog.
//
// It wires the chi router, the JSON handlers for the catalog and session
// endpoints and the middleware chain (trace id, access logging, metrics,
// gzip, request timeout, panic recovery). Mutating routes derive the
// caller's session from HTTP Basic credentials on every request; the
// server keeps no session state.
package http
