package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/food-catalog/internal/app"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/service"
	"github.com/MKhiriev/food-catalog/internal/store"
	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/MKhiriev/food-catalog/internal/validators"
)

// errorStatuses is checked in order: repository errors wrap a low-level
// sentinel together with ErrStoreUnavailable, and the outage must win.
var errorStatuses = []struct {
	target error
	status int
}{
	{validators.ErrItemRejected, http.StatusBadRequest},
	{service.ErrDenied, http.StatusUnauthorized},
	{store.ErrItemNotFound, http.StatusNotFound},
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// errorMessages holds the client-facing text per status; internal details
// of store failures never leave the server.
var errorMessages = map[int]string{
	http.StatusBadRequest:          app.MsgItemRejected,
	http.StatusUnauthorized:        app.MsgAccessDenied,
	http.StatusNotFound:            app.MsgItemNotFound,
	http.StatusServiceUnavailable:  app.MsgCatalogUnavailable,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and writes the mapped status with an
// [utils.ErrorResponse] body. Rejections carry the offending field.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	var rejected *validators.RejectedError
	if errors.As(err, &rejected) {
		_, _ = utils.WriteJSON(w, utils.ErrorResponse{
			Error:  app.MsgItemRejected,
			Field:  rejected.Field,
			Reason: rejected.Reason,
		}, status)
		return
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Basic realm="food-catalog"`)
	}
	utils.WriteError(w, errorMessages[status], status)
}
