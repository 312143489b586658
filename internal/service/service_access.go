package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/MKhiriev/food-catalog/internal/audit"
	"github.com/MKhiriev/food-catalog/internal/config"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/MKhiriev/food-catalog/models"
)

// accessService grants the privileged session to the single identity
// configured in config.App. It keeps no state between calls.
type accessService struct {
	email    string
	password []byte

	auditor audit.AccessAuditor
	now     func() time.Time

	logger *logger.Logger
}

func NewAccessService(cfg config.App, auditor audit.AccessAuditor, logger *logger.Logger) AccessService {
	if auditor == nil {
		auditor = audit.Nop{}
	}

	return &accessService{
		email:    strings.TrimSpace(cfg.AdminEmail),
		password: []byte(cfg.AdminPassword),
		auditor:  auditor,
		now:      time.Now,
		logger:   logger,
	}
}

// Authorize compares the trimmed email case-insensitively and the password
// byte for byte. Every decision is reported to the auditor.
func (a *accessService) Authorize(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	email := strings.TrimSpace(credentials.Email)

	passwordOK := subtle.ConstantTimeCompare([]byte(credentials.Password), a.password) == 1
	granted := email != "" && strings.EqualFold(email, a.email) && passwordOK

	a.auditor.Record(ctx, models.AccessEvent{
		Email:     email,
		Granted:   granted,
		Transport: utils.GetTransportFromContext(ctx),
		TraceID:   utils.GetTraceIDFromContext(ctx),
		At:        a.now().UTC(),
	})

	if !granted {
		logger.FromContext(ctx).Debug().
			Str("func", "accessService.Authorize").
			Str("email", email).
			Msg("access denied")
		return models.Anonymous(), ErrDenied
	}

	return models.Session{Privileged: true, Email: a.email}, nil
}
