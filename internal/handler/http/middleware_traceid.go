package http

import (
	"net/http"

	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/google/uuid"
)

const (
	traceIDHeader = "X-Trace-ID"
	transportHTTP = "http"
)

// withTraceID reuses the caller's X-Trace-ID or generates one, echoes it in
// the response and attaches a trace-scoped logger to the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := utils.WithTransport(utils.WithTraceID(r.Context(), traceID), transportHTTP)
		ctx = h.logger.WithTraceID(traceID).WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
