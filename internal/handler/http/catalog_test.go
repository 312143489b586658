package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/food-catalog/internal/service"
	"github.com/MKhiriev/food-catalog/internal/store"
	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/MKhiriev/food-catalog/internal/validators"
	"github.com/MKhiriev/food-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testItemID = "0190c6d6-0000-7000-8000-000000000001"

var apple = models.ClassifiedItem{
	Item: models.Item{ID: testItemID, Name: "Apple", Category: "fruit"},
	Kind: models.KindFruit,
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// ── GET /api/foods ───────────────────────────────────────────────────────────

func TestListFoods_ParsesSelector(t *testing.T) {
	tests := []struct {
		query string
		sel   models.Selector
	}{
		{query: "", sel: models.SelectorAll},
		{query: "?category=fruit", sel: models.SelectorFruit},
		{query: "?category=Meyve", sel: models.SelectorFruit},
		{query: "?category=sebze", sel: models.SelectorVegetable},
		{query: "?category=nonsense", sel: models.SelectorAll},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			h, m := newTestHandler(t)
			view := models.CatalogView{
				Selector: tt.sel,
				Items:    []models.ClassifiedItem{apple},
				Counts:   models.Counts{Total: 1, Fruit: 1},
			}
			m.catalog.EXPECT().Browse(gomock.Any(), tt.sel).Return(view, nil)

			rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/foods"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, view, decode[models.CatalogView](t, rec))
		})
	}
}

func TestListFoods_StoreUnavailable(t *testing.T) {
	h, m := newTestHandler(t)
	m.catalog.EXPECT().Browse(gomock.Any(), models.SelectorAll).Return(
		models.CatalogView{Selector: models.SelectorAll, Items: []models.ClassifiedItem{}},
		fmt.Errorf("list items: %w", store.ErrStoreUnavailable),
	)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/foods", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

// ── GET /api/foods/counts, /api/foods/{id} ───────────────────────────────────

func TestCountFoods(t *testing.T) {
	h, m := newTestHandler(t)
	m.catalog.EXPECT().Counts(gomock.Any()).Return(models.Counts{Total: 4, Fruit: 1, Vegetable: 2}, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/foods/counts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":4,"fruit":1,"vegetable":2}`, rec.Body.String())
}

func TestGetFood(t *testing.T) {
	h, m := newTestHandler(t)
	m.catalog.EXPECT().Get(gomock.Any(), testItemID).Return(apple, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/foods/"+testItemID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, apple, decode[models.ClassifiedItem](t, rec))
}

func TestGetFood_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.catalog.EXPECT().Get(gomock.Any(), "missing").Return(models.ClassifiedItem{}, store.ErrItemNotFound)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/foods/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "item not found", decode[utils.ErrorResponse](t, rec).Error)
}

// ── POST /api/foods ──────────────────────────────────────────────────────────

func TestAddFood_Created(t *testing.T) {
	h, m := newTestHandler(t)
	expectAdmin(m)
	m.catalog.EXPECT().
		Submit(gomock.Any(), adminSession, models.ItemCandidate{Name: "Apple", Category: "fruit", Calorie: "52"}).
		Return(apple, nil)

	req := withAdmin(httptest.NewRequest(http.MethodPost, "/api/foods",
		strings.NewReader(`{"name":"Apple","category":"fruit","calorie":52}`)))
	rec := serve(t, h, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/foods/"+testItemID, rec.Header().Get("Location"))
	assert.Equal(t, apple, decode[models.ClassifiedItem](t, rec))
}

func TestAddFood_WithoutCredentials(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/foods", strings.NewReader(`{"name":"Apple"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestAddFood_WrongCredentials(t *testing.T) {
	h, m := newTestHandler(t)
	m.access.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(models.Anonymous(), service.ErrDenied)

	req := httptest.NewRequest(http.MethodPost, "/api/foods", strings.NewReader(`{"name":"Apple","category":"fruit"}`))
	req.SetBasicAuth("admin@mail.co", "wrong")
	rec := serve(t, h, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddFood_MalformedAuthorizationHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/foods", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer something")
	rec := serve(t, h, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddFood_Rejected(t *testing.T) {
	h, m := newTestHandler(t)
	expectAdmin(m)
	m.catalog.EXPECT().Submit(gomock.Any(), adminSession, gomock.Any()).Return(
		models.ClassifiedItem{},
		fmt.Errorf("validation: %w", &validators.RejectedError{Field: "calorie", Reason: "calorie must not be negative"}),
	)

	req := withAdmin(httptest.NewRequest(http.MethodPost, "/api/foods",
		strings.NewReader(`{"name":"Apple","category":"fruit","calorie":"-5"}`)))
	rec := serve(t, h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[utils.ErrorResponse](t, rec)
	assert.Equal(t, "calorie", body.Field)
	assert.Equal(t, "calorie must not be negative", body.Reason)
}

func TestAddFood_InvalidJSON(t *testing.T) {
	h, m := newTestHandler(t)
	expectAdmin(m)

	rec := serve(t, h, withAdmin(httptest.NewRequest(http.MethodPost, "/api/foods", strings.NewReader(`{"name":`))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrInvalidJSON.Error(), decode[utils.ErrorResponse](t, rec).Error)
}

func TestAddFood_StoreUnavailable(t *testing.T) {
	h, m := newTestHandler(t)
	expectAdmin(m)
	m.catalog.EXPECT().Submit(gomock.Any(), adminSession, gomock.Any()).
		Return(models.ClassifiedItem{}, errors.Join(store.ErrStoreUnavailable, errors.New("connection reset")))

	rec := serve(t, h, withAdmin(httptest.NewRequest(http.MethodPost, "/api/foods",
		strings.NewReader(`{"name":"Apple","category":"fruit"}`))))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

// ── DELETE /api/foods/{id} ───────────────────────────────────────────────────

func TestDeleteFood(t *testing.T) {
	tests := []struct {
		name       string
		admin      bool
		deleted    bool
		err        error
		wantStatus int
	}{
		{name: "deleted", admin: true, deleted: true, wantStatus: http.StatusNoContent},
		{name: "unknown id", admin: true, wantStatus: http.StatusNotFound},
		{name: "anonymous", err: service.ErrDenied, wantStatus: http.StatusUnauthorized},
		{name: "store unavailable", admin: true, err: store.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			req := httptest.NewRequest(http.MethodDelete, "/api/foods/"+testItemID, nil)
			session := models.Anonymous()
			if tt.admin {
				expectAdmin(m)
				req = withAdmin(req)
				session = adminSession
			}
			m.catalog.EXPECT().Delete(gomock.Any(), session, testItemID).Return(tt.deleted, tt.err)

			rec := serve(t, h, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
