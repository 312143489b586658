package client

import "errors"

var (
	ErrCredentialsRequired = errors.New("credentials required: pass --email and --password or set CATALOG_EMAIL and CATALOG_PASSWORD")
	ErrInvalidCategory     = errors.New("category must be one of all, fruit, vegetable")
)
