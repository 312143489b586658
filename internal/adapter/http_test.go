// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/food-catalog/internal/config"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/validators"
	"github.com/MKhiriev/food-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminCreds = models.Credentials{Email: "admin@mail.co", Password: "123456"}

func newTestAdapter(t *testing.T, serverURL string) *httpCatalogAdapter {
	t.Helper()
	a, err := NewHTTPCatalogAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpCatalogAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func ptr[T any](v T) *T { return &v }

// ── NewHTTPCatalogAdapter ───────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme and trailing slash", raw: " https://catalog.local/ ", want: "https://catalog.local"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPCatalogAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPCatalogAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Nil(t, a)
	assert.Error(t, err)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("v1.0.0\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", got)
}

// ── Browse ──────────────────────────────────────────────────────────────────

func TestBrowse_SendsSelector(t *testing.T) {
	view := models.CatalogView{
		Selector: models.SelectorFruit,
		Items: []models.ClassifiedItem{
			{Item: models.Item{ID: "1", Name: "Apple", Category: "fruit", Calorie: ptr(52.0)}, Kind: models.KindFruit},
		},
		Counts: models.Counts{Total: 3, Fruit: 1, Vegetable: 1},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/foods", r.URL.Path)
		assert.Equal(t, "fruit", r.URL.Query().Get("category"))
		writeJSON(t, w, http.StatusOK, view)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Browse(context.Background(), models.SelectorFruit)

	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Apple", got.Items[0].Name)
	assert.Equal(t, 52.0, *got.Items[0].Calorie)
	assert.Equal(t, view.Counts, got.Counts)
}

func TestBrowse_UnavailableStillReturnsView(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusServiceUnavailable, models.CatalogView{
			Selector: models.SelectorAll,
			Items:    []models.ClassifiedItem{},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Browse(context.Background(), models.SelectorAll)

	require.ErrorIs(t, err, ErrUnavailable)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
	assert.Equal(t, models.Counts{}, got.Counts)
}

func TestBrowse_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Browse(context.Background(), models.SelectorAll)

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "Internal Server Error")
}

// ── Counts / Get ────────────────────────────────────────────────────────────

func TestCounts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/foods/counts", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.Counts{Total: 5, Fruit: 2, Vegetable: 2})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Counts{Total: 5, Fruit: 2, Vegetable: 2}, got)
}

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/foods/abc", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ClassifiedItem{
			Item: models.Item{ID: "abc", Name: "Carrot", Category: "sebze"},
			Kind: models.KindVegetable,
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Get(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "Carrot", got.Name)
	assert.Equal(t, models.KindVegetable, got.Kind)
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "item not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Add ─────────────────────────────────────────────────────────────────────

func TestAdd_SendsBasicAuthAndCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/foods", r.URL.Path)

		email, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, adminCreds.Email, email)
		assert.Equal(t, adminCreds.Password, password)

		var candidate models.ItemCandidate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&candidate))
		assert.Equal(t, "Pear", candidate.Name)
		assert.Equal(t, models.CalorieInput("57"), candidate.Calorie)

		writeJSON(t, w, http.StatusCreated, models.ClassifiedItem{
			Item: models.Item{ID: "new-id", Name: "Pear", Category: "fruit", Calorie: ptr(57.0)},
			Kind: models.KindFruit,
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Add(context.Background(), adminCreds, models.ItemCandidate{
		Name:     "Pear",
		Category: "fruit",
		Calorie:  "57",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", got.ID)
}

func TestAdd_RejectedCarriesField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{
			"error":  "item rejected",
			"field":  "calorie",
			"reason": "must be a non-negative number",
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Add(context.Background(), adminCreds, models.ItemCandidate{Name: "X", Category: "fruit", Calorie: "-1"})

	require.ErrorIs(t, err, validators.ErrItemRejected)
	var rejected *validators.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "calorie", rejected.Field)
	assert.Equal(t, "must be a non-negative number", rejected.Reason)
}

func TestAdd_MalformedBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Add(context.Background(), adminCreds, models.ItemCandidate{})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.NotErrorIs(t, err, validators.ErrItemRejected)
}

func TestAdd_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		assert.False(t, ok)
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "access denied"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Add(context.Background(), models.Credentials{}, models.ItemCandidate{Name: "X"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "missing id", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "denied", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "store down", status: http.StatusServiceUnavailable, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/foods/id-1", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Delete(context.Background(), adminCreds, "id-1")

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Login / Logout ──────────────────────────────────────────────────────────

func TestLogin_Granted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/session", r.URL.Path)

		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, adminCreds, creds)

		writeJSON(t, w, http.StatusOK, models.Session{Privileged: true, Email: creds.Email})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Login(context.Background(), adminCreds)

	require.NoError(t, err)
	assert.True(t, got.Privileged)
	assert.Equal(t, adminCreds.Email, got.Email)
}

func TestLogin_Denied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "access denied"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Email: "x", Password: "y"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, models.Anonymous(), got)
}

func TestLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, http.StatusOK, models.Anonymous())
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Logout(context.Background())

	require.NoError(t, err)
	assert.False(t, got.Privileged)
}

func TestRequest_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Counts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "counts request")
}
