package store

import (
	"fmt"

	"github.com/MKhiriev/food-catalog/models"
	sq "github.com/Masterminds/squirrel"
)

const foodsTable = "foods"

var itemColumns = []string{
	"id",
	"name",
	"category",
	"calorie",
	"description",
	"image",
	"created_at",
}

func buildListItemsQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select(itemColumns...).
		From(foodsTable).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetItemQuery(ph sq.PlaceholderFormat, id string) (string, []any, error) {
	query, args, err := sq.Select(itemColumns...).
		From(foodsTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertItemQuery(ph sq.PlaceholderFormat, item models.Item) (string, []any, error) {
	query, args, err := sq.Insert(foodsTable).
		Columns(itemColumns...).
		Values(
			item.ID,
			item.Name,
			item.Category,
			item.Calorie,
			item.Description,
			item.Image,
			item.CreatedAt,
		).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteItemQuery(ph sq.PlaceholderFormat, id string) (string, []any, error) {
	query, args, err := sq.Delete(foodsTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
