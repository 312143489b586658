package http

import (
	"net/http"

	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/MKhiriev/food-catalog/models"
)

// withSession derives the caller's session from HTTP Basic credentials and
// stores it in the request context.
//
// Missing, malformed or rejected credentials yield the anonymous session;
// the request is still forwarded so the catalog service decides (and
// reports) the denial. The decision itself is audited by the access service.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := models.Anonymous()

		if r.Header.Get("Authorization") != "" {
			email, password, ok := r.BasicAuth()
			if !ok {
				logger.FromRequest(r).Debug().Err(ErrInvalidAuthorizationHeader).Str("func", "*Handler.withSession").Send()
			} else {
				// a denial is not an error here: the anonymous session is kept
				granted, err := h.services.AccessService.Authorize(ctx, models.Credentials{Email: email, Password: password})
				if err == nil {
					session = granted
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}
