package store

import (
	"context"

	"github.com/MKhiriev/food-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository persists catalog items.
type ItemRepository interface {
	// List returns every item, most recently created first
	// (ties broken by id, descending).
	List(ctx context.Context) ([]models.Item, error)
	// Get returns the item with the given id or ErrItemNotFound.
	Get(ctx context.Context, id string) (models.Item, error)
	// Insert stores a new item, assigning its id and creation time.
	Insert(ctx context.Context, item models.NewItem) (models.Item, error)
	// Delete removes the item with the given id. deleted is false when no
	// such item existed.
	Delete(ctx context.Context, id string) (deleted bool, err error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// IDGenerator produces identifiers for new items.
type IDGenerator interface {
	Generate() string
}

// ErrorClassificator decides whether a driver error is worth retrying.
// The catalog never retries by itself; the classification is logged so
// operators can tell transient outages from persistent faults.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
