package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/models"
)

// memoryItemRepository keeps items in a map guarded by a RWMutex. It is
// selected with the "memory" driver and backs most service tests.
type memoryItemRepository struct {
	mu     sync.RWMutex
	items  map[string]models.Item
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewMemoryItemRepository returns an in-process [ItemRepository] pre-filled
// with seed. Seed items keep their ids and creation times.
func NewMemoryItemRepository(ids IDGenerator, logger *logger.Logger, seed ...models.Item) ItemRepository {
	items := make(map[string]models.Item, len(seed))
	for _, item := range seed {
		items[item.ID] = cloneItem(item)
	}

	return &memoryItemRepository{
		items:  items,
		ids:    ids,
		now:    currentTime,
		logger: logger,
	}
}

func (m *memoryItemRepository) List(ctx context.Context) ([]models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(err)
	}

	m.mu.RLock()
	items := make([]models.Item, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, cloneItem(item))
	}
	m.mu.RUnlock()

	slices.SortFunc(items, compareNewestFirst)
	return items, nil
}

func (m *memoryItemRepository) Get(ctx context.Context, id string) (models.Item, error) {
	if err := ctx.Err(); err != nil {
		return models.Item{}, unavailable(err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	return cloneItem(item), nil
}

func (m *memoryItemRepository) Insert(ctx context.Context, newItem models.NewItem) (models.Item, error) {
	if err := ctx.Err(); err != nil {
		return models.Item{}, unavailable(err)
	}

	item := models.Item{
		ID:          m.ids.Generate(),
		Name:        newItem.Name,
		Category:    newItem.Category.String(),
		Calorie:     newItem.Calorie,
		Description: newItem.Description,
		Image:       newItem.Image,
		CreatedAt:   m.now(),
	}

	m.mu.Lock()
	m.items[item.ID] = cloneItem(item)
	m.mu.Unlock()

	logger.FromContext(ctx).Debug().Str("func", "memoryItemRepository.Insert").Str("item_id", item.ID).Msg("item inserted")
	return item, nil
}

func (m *memoryItemRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, unavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *memoryItemRepository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func compareNewestFirst(a, b models.Item) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(b.ID, a.ID)
}

// cloneItem copies the optional fields so callers cannot mutate stored state
// through shared pointers.
func cloneItem(item models.Item) models.Item {
	if item.Calorie != nil {
		v := *item.Calorie
		item.Calorie = &v
	}
	if item.Description != nil {
		v := *item.Description
		item.Description = &v
	}
	if item.Image != nil {
		v := *item.Image
		item.Image = &v
	}
	return item
}
