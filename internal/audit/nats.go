package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/models"
	"github.com/nats-io/nats.go"
)

// Publisher is the subset of *nats.Conn the NATS auditor needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSAuditor publishes every decision as a JSON message on a subject.
// Publish failures are logged and otherwise ignored.
type NATSAuditor struct {
	publisher Publisher
	subject   string
	logger    *logger.Logger
}

func NewNATSAuditor(publisher Publisher, subject string, logger *logger.Logger) *NATSAuditor {
	return &NATSAuditor{
		publisher: publisher,
		subject:   subject,
		logger:    logger,
	}
}

func (a *NATSAuditor) Record(ctx context.Context, event models.AccessEvent) {
	if err := ctx.Err(); err != nil {
		a.logger.Err(err).Str("func", "NATSAuditor.Record").Msg("context cancelled before publish")
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		a.logger.Err(err).Str("func", "NATSAuditor.Record").Msg("failed to marshal access event")
		return
	}

	if err = a.publisher.Publish(a.subject, data); err != nil {
		a.logger.Err(err).
			Str("func", "NATSAuditor.Record").
			Str("subject", a.subject).
			Msg("failed to publish access event")
	}
}

// ConnectNATS dials the NATS server used for audit events.
func ConnectNATS(url string, log *logger.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("food-catalog"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Str("func", "ConnectNATS").Msg("disconnected from NATS")
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	log.Info().Str("func", "ConnectNATS").Str("url", nc.ConnectedUrlRedacted()).Msg("connected to NATS")
	return nc, nil
}
