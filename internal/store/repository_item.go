// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/models"
)

// itemRepository is the SQL implementation of [ItemRepository] shared by the
// postgres and sqlite backends. Dialect differences are confined to the
// placeholder format carried by [DB].
type itemRepository struct {
	*DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] over db.
func NewItemRepository(db *DB, ids IDGenerator, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		ids:    ids,
		now:    currentTime,
		logger: logger,
	}
}

// currentTime is truncated to microseconds, the resolution of a postgres
// TIMESTAMP, so the returned item equals what a later read yields.
func currentTime() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// List returns all items newest first.
func (r *itemRepository) List(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(r.placeholder)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logFailure(log, err, "itemRepository.List", "failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 32)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.List").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.logFailure(log, rowsErr, "itemRepository.List", "error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Get returns a single item or [ErrItemNotFound].
func (r *itemRepository) Get(ctx context.Context, id string) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemQuery(r.placeholder, id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Get").Msg("failed to create query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		r.logFailure(log, err, "itemRepository.Get", "failed to get item")
		return models.Item{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	return item, nil
}

// Insert assigns id and creation time and stores the item.
func (r *itemRepository) Insert(ctx context.Context, newItem models.NewItem) (models.Item, error) {
	log := logger.FromContext(ctx)

	item := models.Item{
		ID:          r.ids.Generate(),
		Name:        newItem.Name,
		Category:    newItem.Category.String(),
		Calorie:     newItem.Calorie,
		Description: newItem.Description,
		Image:       newItem.Image,
		CreatedAt:   r.now(),
	}

	query, args, err := buildInsertItemQuery(r.placeholder, item)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Insert").Msg("failed to create query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logFailure(log, err, "itemRepository.Insert", "failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "itemRepository.Insert").Str("item_id", item.ID).Msg("item inserted")
	return item, nil
}

// Delete removes the item and reports whether a row was affected.
func (r *itemRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(r.placeholder, id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Delete").Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logFailure(log, err, "itemRepository.Delete", "failed to delete item")
		return false, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logFailure(log, err, "itemRepository.Delete", "failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return affected > 0, nil
}

func (r *itemRepository) logFailure(log *logger.Logger, err error, funcName, msg string) {
	log.Err(err).
		Str("func", funcName).
		Str("classification", r.classify(err).String()).
		Msg(msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item        models.Item
		calorie     sql.NullFloat64
		description sql.NullString
		image       sql.NullString
	)

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&calorie,
		&description,
		&image,
		&item.CreatedAt,
	)
	if err != nil {
		return models.Item{}, err
	}

	if calorie.Valid {
		item.Calorie = &calorie.Float64
	}
	if description.Valid {
		item.Description = &description.String
	}
	if image.Valid {
		item.Image = &image.String
	}
	item.CreatedAt = item.CreatedAt.UTC()

	return item, nil
}
