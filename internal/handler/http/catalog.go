package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/food-catalog/internal/category"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/service"
	"github.com/MKhiriev/food-catalog/internal/store"
	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/MKhiriev/food-catalog/models"
	"github.com/go-chi/chi/v5"
)

// listFoods serves the filtered catalog with counts. A store outage still
// produces a well-formed view (empty items) with status 503.
func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	sel := category.ParseSelector(r.URL.Query().Get("category"))

	view, err := h.services.CatalogService.Browse(r.Context(), sel)
	if err != nil {
		if errors.Is(err, store.ErrStoreUnavailable) {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.listFoods").Msg("catalog unavailable")
			if view.Items == nil {
				view.Items = []models.ClassifiedItem{}
			}
			_, _ = utils.WriteJSON(w, view, http.StatusServiceUnavailable)
			return
		}
		writeServiceError(w, r, "*Handler.listFoods", err)
		return
	}

	_, _ = utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) countFoods(w http.ResponseWriter, r *http.Request) {
	counts, err := h.services.CatalogService.Counts(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.countFoods", err)
		return
	}

	_, _ = utils.WriteJSON(w, counts, http.StatusOK)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.CatalogService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getFood", err)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) addFood(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()
	session, _ := utils.GetSessionFromContext(ctx)

	// access is checked before the body is parsed
	if !session.Privileged {
		writeServiceError(w, r, "*Handler.addFood", service.ErrDenied)
		return
	}

	var candidate models.ItemCandidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		log.Err(err).Str("func", "*Handler.addFood").Msg(ErrInvalidJSON.Error())
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.services.CatalogService.Submit(ctx, session, candidate)
	if err != nil {
		writeServiceError(w, r, "*Handler.addFood", err)
		return
	}

	w.Header().Set("Location", "/api/foods/"+item.ID)
	_, _ = utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, _ := utils.GetSessionFromContext(ctx)

	deleted, err := h.services.CatalogService.Delete(ctx, session, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteFood", err)
		return
	}
	if !deleted {
		writeServiceError(w, r, "*Handler.deleteFood", store.ErrItemNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
