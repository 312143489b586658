package service

import "errors"

var (
	// ErrDenied is returned for failed authorization and for mutations
	// attempted with an unprivileged session.
	ErrDenied = errors.New("access denied")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoItemRepository      = errors.New("no item repository configured")
)
