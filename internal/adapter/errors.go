package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("item not found")
	ErrUnavailable         = errors.New("catalog unavailable")
	ErrInternalServerError = errors.New("internal server error")
)
