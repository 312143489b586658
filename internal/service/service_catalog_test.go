package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/mock"
	"github.com/MKhiriev/food-catalog/internal/store"
	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/MKhiriev/food-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	admin = models.Session{Privileged: true, Email: "admin@mail.co"}
	t0    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func storedItem(id, name, cat string, age time.Duration) models.Item {
	return models.Item{ID: id, Name: name, Category: cat, CreatedAt: t0.Add(-age)}
}

// fixture: newest first, as the repository returns them.
func fixtureItems() []models.Item {
	return []models.Item{
		storedItem("5", "Elma", "Meyve", 0),
		storedItem("4", "Carrot", "vegetable", time.Minute),
		storedItem("3", "Tomato", "fruit / vegetable", 2*time.Minute),
		storedItem("2", "Bread", "bakery", 3*time.Minute),
		storedItem("1", "Ispanak", "SEBZE", 4*time.Minute),
	}
}

func newTestCatalog(t *testing.T) (CatalogService, *mock.MockItemRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	return NewCatalogService(repo, logger.Nop()), repo
}

func ids(items []models.ClassifiedItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

// ── reads ────────────────────────────────────────────────────────────────────

func TestCatalogService_ListAll_ClassifiesInStoreOrder(t *testing.T) {
	svc, repo := newTestCatalog(t)
	ctx := context.Background()
	repo.EXPECT().List(ctx).Return(fixtureItems(), nil)

	got, err := svc.ListAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"5", "4", "3", "2", "1"}, ids(got))
	assert.Equal(t, models.KindFruit, got[0].Kind)
	assert.Equal(t, models.KindVegetable, got[1].Kind)
	assert.Equal(t, models.KindFruit, got[2].Kind, "fruit wins when both vocabularies appear")
	assert.Equal(t, models.KindUnknown, got[3].Kind)
	assert.Equal(t, models.KindVegetable, got[4].Kind)
}

func TestCatalogService_ListByCategory(t *testing.T) {
	tests := []struct {
		name string
		sel  models.Selector
		want []string
	}{
		{name: "all", sel: models.SelectorAll, want: []string{"5", "4", "3", "2", "1"}},
		{name: "fruit", sel: models.SelectorFruit, want: []string{"5", "3"}},
		{name: "vegetable", sel: models.SelectorVegetable, want: []string{"4", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestCatalog(t)
			repo.EXPECT().List(gomock.Any()).Return(fixtureItems(), nil)

			got, err := svc.ListByCategory(context.Background(), tt.sel)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCatalogService_ListByCategory_EmptyCatalog(t *testing.T) {
	svc, repo := newTestCatalog(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	got, err := svc.ListByCategory(context.Background(), models.SelectorFruit)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalogService_Counts(t *testing.T) {
	svc, repo := newTestCatalog(t)
	repo.EXPECT().List(gomock.Any()).Return(fixtureItems(), nil)

	got, err := svc.Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Counts{Total: 5, Fruit: 2, Vegetable: 2}, got)
	assert.LessOrEqual(t, got.Fruit+got.Vegetable, got.Total)
}

func TestCatalogService_Browse_UsesOneRead(t *testing.T) {
	svc, repo := newTestCatalog(t)
	repo.EXPECT().List(gomock.Any()).Return(fixtureItems(), nil).Times(1)

	view, err := svc.Browse(context.Background(), models.SelectorVegetable)

	require.NoError(t, err)
	assert.Equal(t, models.SelectorVegetable, view.Selector)
	assert.Equal(t, []string{"4", "1"}, ids(view.Items))
	assert.Equal(t, models.Counts{Total: 5, Fruit: 2, Vegetable: 2}, view.Counts)
}

func TestCatalogService_StoreUnavailable(t *testing.T) {
	outage := errors.Join(store.ErrStoreUnavailable, errors.New("dial tcp: connection refused"))

	t.Run("list returns empty slice", func(t *testing.T) {
		svc, repo := newTestCatalog(t)
		repo.EXPECT().List(gomock.Any()).Return(nil, outage)

		got, err := svc.ListAll(context.Background())

		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("filtered list returns empty slice", func(t *testing.T) {
		svc, repo := newTestCatalog(t)
		repo.EXPECT().List(gomock.Any()).Return(nil, outage)

		got, err := svc.ListByCategory(context.Background(), models.SelectorFruit)

		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
		assert.NotNil(t, got)
	})

	t.Run("counts", func(t *testing.T) {
		svc, repo := newTestCatalog(t)
		repo.EXPECT().List(gomock.Any()).Return(nil, outage)

		got, err := svc.Counts(context.Background())

		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
		assert.Equal(t, models.Counts{}, got)
	})

	t.Run("browse", func(t *testing.T) {
		svc, repo := newTestCatalog(t)
		repo.EXPECT().List(gomock.Any()).Return(nil, outage)

		view, err := svc.Browse(context.Background(), models.SelectorAll)

		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
		assert.NotNil(t, view.Items)
		assert.Empty(t, view.Items)
	})
}

func TestCatalogService_Get(t *testing.T) {
	svc, repo := newTestCatalog(t)
	ctx := context.Background()
	item := storedItem("5", "Elma", "Meyve", 0)
	repo.EXPECT().Get(ctx, "5").Return(item, nil)

	got, err := svc.Get(ctx, "5")

	require.NoError(t, err)
	assert.Equal(t, item, got.Item)
	assert.Equal(t, models.KindFruit, got.Kind)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	svc, repo := newTestCatalog(t)
	repo.EXPECT().Get(gomock.Any(), "missing").Return(models.Item{}, store.ErrItemNotFound)

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

// ── mutations ────────────────────────────────────────────────────────────────

func TestCatalogService_Submit_Success(t *testing.T) {
	svc, repo := newTestCatalog(t)
	ctx := context.Background()
	calorie := 52.0
	image := "https://example.com/apple.png"

	repo.EXPECT().Insert(ctx, models.NewItem{
		Name:     "Apple",
		Category: models.KindFruit,
		Calorie:  &calorie,
		Image:    &image,
	}).Return(models.Item{
		ID:        "new-id",
		Name:      "Apple",
		Category:  "fruit",
		Calorie:   &calorie,
		Image:     &image,
		CreatedAt: t0,
	}, nil)

	got, err := svc.Submit(ctx, admin, models.ItemCandidate{
		Name:     "  Apple ",
		Category: "Fruit",
		Calorie:  "52",
		Image:    image,
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", got.ID)
	assert.Equal(t, models.KindFruit, got.Kind)
}

func TestCatalogService_Submit_DeniedWithoutStoreCall(t *testing.T) {
	svc, _ := newTestCatalog(t)

	_, err := svc.Submit(context.Background(), models.Anonymous(), models.ItemCandidate{Name: "Apple", Category: "fruit"})

	assert.ErrorIs(t, err, ErrDenied)
}

func TestCatalogService_Submit_StoreUnavailable(t *testing.T) {
	svc, repo := newTestCatalog(t)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(models.Item{}, store.ErrStoreUnavailable)

	_, err := svc.Submit(context.Background(), admin, models.ItemCandidate{Name: "Apple", Category: "fruit"})

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestCatalogService_Delete(t *testing.T) {
	tests := []struct {
		name        string
		session     models.Session
		setup       func(repo *mock.MockItemRepository)
		wantDeleted bool
		wantErr     error
	}{
		{
			name:    "deleted",
			session: admin,
			setup: func(repo *mock.MockItemRepository) {
				repo.EXPECT().Delete(gomock.Any(), "5").Return(true, nil)
			},
			wantDeleted: true,
		},
		{
			name:    "unknown id",
			session: admin,
			setup: func(repo *mock.MockItemRepository) {
				repo.EXPECT().Delete(gomock.Any(), "5").Return(false, nil)
			},
		},
		{
			name:    "store unavailable",
			session: admin,
			setup: func(repo *mock.MockItemRepository) {
				repo.EXPECT().Delete(gomock.Any(), "5").Return(false, store.ErrStoreUnavailable)
			},
			wantErr: store.ErrStoreUnavailable,
		},
		{
			name:    "anonymous",
			session: models.Anonymous(),
			setup:   func(*mock.MockItemRepository) {},
			wantErr: ErrDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestCatalog(t)
			tt.setup(repo)

			deleted, err := svc.Delete(context.Background(), tt.session, "5")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

// TestCatalogService_AddThenDelete runs the read-after-write cycle against
// the in-memory repository.
func TestCatalogService_AddThenDelete(t *testing.T) {
	repo := store.NewMemoryItemRepository(utils.NewUUIDGenerator(), logger.Nop())
	svc := NewCatalogService(repo, logger.Nop())
	ctx := context.Background()

	created, err := svc.Submit(ctx, admin, models.ItemCandidate{Name: "Leek", Category: "vegetable"})
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID}, ids(all))

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Counts{Total: 1, Vegetable: 1}, counts)

	deleted, err := svc.Delete(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrItemNotFound)

	deleted, err = svc.Delete(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCatalogService_DeleteUnknownLeavesCatalogUnchanged(t *testing.T) {
	repo := store.NewMemoryItemRepository(utils.NewUUIDGenerator(), logger.Nop(), fixtureItems()...)
	svc := NewCatalogService(repo, logger.Nop())
	ctx := context.Background()

	before, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, before, 5)

	for _, id := range []string{"0192f5e4-8c4b-7a9e-9a7a-3f3c2b1d0e5f", "6", ""} {
		deleted, err := svc.Delete(ctx, admin, id)
		require.NoError(t, err)
		assert.False(t, deleted, id)
	}

	after, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(after), counts.Total)
	assert.Equal(t, models.Counts{Total: 5, Fruit: 2, Vegetable: 2}, counts)
}
