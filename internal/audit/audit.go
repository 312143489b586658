// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audit delivers access decisions to observers. The access service
// reports every decision to an AccessAuditor; what happens next (logging,
// publishing, counting) is decided at wiring time.
package audit

import (
	"context"

	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/models"
)

//go:generate mockgen -source=audit.go -destination=../mock/audit_mock.go -package=mock

// AccessAuditor observes authorization decisions. Record must not block the
// caller for long and never fails the decision it observes.
type AccessAuditor interface {
	Record(ctx context.Context, event models.AccessEvent)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Record(context.Context, models.AccessEvent) {}

// LogAuditor writes each decision to the application log. Denials are
// logged at warn level.
type LogAuditor struct {
	logger *logger.Logger
}

func NewLogAuditor(logger *logger.Logger) *LogAuditor {
	return &LogAuditor{logger: logger}
}

func (a *LogAuditor) Record(_ context.Context, event models.AccessEvent) {
	entry := a.logger.Info()
	if !event.Granted {
		entry = a.logger.Warn()
	}
	entry.
		Str("func", "LogAuditor.Record").
		Str("email", event.Email).
		Bool("granted", event.Granted).
		Str("transport", event.Transport).
		Str(logger.TraceIDField, event.TraceID).
		Msg("access decision")
}

// Multi fans an event out to every auditor in order.
type Multi []AccessAuditor

func (m Multi) Record(ctx context.Context, event models.AccessEvent) {
	for _, a := range m {
		a.Record(ctx, event)
	}
}
