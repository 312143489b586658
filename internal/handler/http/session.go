package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/MKhiriev/food-catalog/models"
)

// login checks credentials and reports the resulting session. Nothing is
// issued: clients keep the credentials and present them on each mutation.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.login").Msg(ErrInvalidJSON.Error())
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.services.AccessService.Authorize(r.Context(), credentials)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}

// logout acknowledges the transition back to the anonymous session.
func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.Anonymous(), http.StatusOK)
}
