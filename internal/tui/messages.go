package tui

import (
	"github.com/MKhiriev/food-catalog/models"
)

type viewLoadedMsg struct {
	selector models.Selector
	view     models.CatalogView
	err      error
}

type itemDeletedMsg struct {
	item models.ClassifiedItem
	err  error
}

// sessionMsg reports the result of a login or logout round trip.
type sessionMsg struct {
	creds   models.Credentials
	session models.Session
	logout  bool
	err     error
}

// versionMsg carries the server version; empty when it could not be read.
type versionMsg string

type clearStatusMsg struct{}
