// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is the email/password pair presented to the access gate.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session carries the outcome of an authorization check for the duration
// of a single call. The zero value is the anonymous session.
//
// Session is never persisted: transports derive it from the presented
// credentials and pass it explicitly to every mutation.
type Session struct {
	// Privileged reports whether the caller may add or delete items.
	Privileged bool `json:"privileged"`

	// Email is the identity that was granted; empty for anonymous sessions.
	Email string `json:"email,omitempty"`
}

// Anonymous returns the unprivileged session.
func Anonymous() Session {
	return Session{}
}

// AccessEvent describes a single authorization decision. It is handed to
// audit sinks and never stored by the catalog itself.
type AccessEvent struct {
	Email     string    `json:"email"`
	Granted   bool      `json:"granted"`
	Transport string    `json:"transport,omitempty"`
	TraceID   string    `json:"trace_id,omitempty"`
	At        time.Time `json:"at"`
}
