package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/food-catalog/internal/category"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/store"
	"github.com/MKhiriev/food-catalog/internal/validators"
	"github.com/MKhiriev/food-catalog/models"
)

type catalogService struct {
	items store.ItemRepository

	logger *logger.Logger
}

func NewCatalogService(items store.ItemRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		items:  items,
		logger: logger,
	}
}

func (c *catalogService) ListAll(ctx context.Context) ([]models.ClassifiedItem, error) {
	return c.snapshot(ctx)
}

func (c *catalogService) ListByCategory(ctx context.Context, sel models.Selector) ([]models.ClassifiedItem, error) {
	all, err := c.snapshot(ctx)
	if err != nil {
		return all, err
	}
	return filter(all, sel), nil
}

func (c *catalogService) Counts(ctx context.Context) (models.Counts, error) {
	all, err := c.snapshot(ctx)
	if err != nil {
		return models.Counts{}, err
	}
	return count(all), nil
}

func (c *catalogService) Browse(ctx context.Context, sel models.Selector) (models.CatalogView, error) {
	view := models.CatalogView{Selector: sel}

	all, err := c.snapshot(ctx)
	if err != nil {
		view.Items = all
		return view, err
	}

	view.Items = filter(all, sel)
	view.Counts = count(all)
	return view, nil
}

func (c *catalogService) Get(ctx context.Context, id string) (models.ClassifiedItem, error) {
	item, err := c.items.Get(ctx, id)
	if err != nil {
		return models.ClassifiedItem{}, fmt.Errorf("get item %q: %w", id, err)
	}
	return classify(item), nil
}

// Submit expects a candidate already checked by [CatalogValidationService].
func (c *catalogService) Submit(ctx context.Context, session models.Session, candidate models.ItemCandidate) (models.ClassifiedItem, error) {
	if !session.Privileged {
		return models.ClassifiedItem{}, ErrDenied
	}

	item, err := c.items.Insert(ctx, validators.ToNewItem(candidate))
	if err != nil {
		return models.ClassifiedItem{}, fmt.Errorf("insert item: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "catalogService.Submit").
		Str("id", item.ID).
		Str("email", session.Email).
		Msg("item added")

	return classify(item), nil
}

func (c *catalogService) Delete(ctx context.Context, session models.Session, id string) (bool, error) {
	if !session.Privileged {
		return false, ErrDenied
	}

	deleted, err := c.items.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete item %q: %w", id, err)
	}

	if deleted {
		logger.FromContext(ctx).Info().
			Str("func", "catalogService.Delete").
			Str("id", id).
			Str("email", session.Email).
			Msg("item deleted")
	}

	return deleted, nil
}

// snapshot reads the whole catalog once and classifies every item.
// The result is never nil.
func (c *catalogService) snapshot(ctx context.Context) ([]models.ClassifiedItem, error) {
	items, err := c.items.List(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "catalogService.snapshot").Msg("error listing items")
		return []models.ClassifiedItem{}, fmt.Errorf("list items: %w", err)
	}

	classified := make([]models.ClassifiedItem, 0, len(items))
	for _, item := range items {
		classified = append(classified, classify(item))
	}
	return classified, nil
}

func classify(item models.Item) models.ClassifiedItem {
	return models.ClassifiedItem{Item: item, Kind: category.Normalize(item.Category)}
}

func filter(items []models.ClassifiedItem, sel models.Selector) []models.ClassifiedItem {
	if sel == models.SelectorAll {
		return items
	}

	out := make([]models.ClassifiedItem, 0, len(items))
	for _, item := range items {
		if sel.Matches(item.Kind) {
			out = append(out, item)
		}
	}
	return out
}

func count(items []models.ClassifiedItem) models.Counts {
	counts := models.Counts{Total: len(items)}
	for _, item := range items {
		switch item.Kind {
		case models.KindFruit:
			counts.Fruit++
		case models.KindVegetable:
			counts.Vegetable++
		}
	}
	return counts
}
