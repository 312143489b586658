package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/food-catalog/internal/app"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/service"
	"github.com/MKhiriev/food-catalog/internal/store"
	"github.com/MKhiriev/food-catalog/internal/validators"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorCodes is checked in order so a wrapped outage never depends on
// iteration order.
var errorCodes = []struct {
	target error
	code   codes.Code
}{
	{validators.ErrItemRejected, codes.InvalidArgument},
	{service.ErrDenied, codes.PermissionDenied},
	{store.ErrItemNotFound, codes.NotFound},
	{store.ErrStoreUnavailable, codes.Unavailable},
}

func codeFromError(err error) codes.Code {
	for _, e := range errorCodes {
		if errors.Is(err, e.target) {
			return e.code
		}
	}
	return codes.Internal
}

// toStatus converts a service error into a gRPC status. Rejections keep
// the field and reason in the message; internal failures are not exposed.
func toStatus(ctx context.Context, funcName string, err error) error {
	code := codeFromError(err)

	log := logger.FromContext(ctx)
	if code == codes.Internal || code == codes.Unavailable {
		log.Err(err).Str("func", funcName).Str("code", code.String()).Msg("call failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Str("code", code.String()).Msg("call rejected")
	}

	var rejected *validators.RejectedError
	switch {
	case errors.As(err, &rejected):
		return status.Error(code, rejected.Error())
	case code == codes.PermissionDenied:
		return status.Error(code, app.MsgAccessDenied)
	case code == codes.NotFound:
		return status.Error(code, app.MsgItemNotFound)
	case code == codes.Unavailable:
		return status.Error(code, app.MsgCatalogUnavailable)
	default:
		return status.Error(code, fmt.Sprintf("internal error in %s", funcName))
	}
}
