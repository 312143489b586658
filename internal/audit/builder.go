package audit

import (
	"github.com/MKhiriev/food-catalog/internal/config"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/metrics"
)

// NewAuditor assembles the auditors enabled by cfg. Decisions are always
// counted in m. The returned close function releases the NATS connection,
// if one was opened.
func NewAuditor(cfg config.Audit, m *metrics.Metrics, log *logger.Logger) (AccessAuditor, func(), error) {
	auditors := Multi{NewMetricsAuditor(m.AccessDecisions)}
	closeFn := func() {}

	if cfg.Log {
		auditors = append(auditors, NewLogAuditor(log))
	}

	if cfg.NATSURL != "" {
		nc, err := ConnectNATS(cfg.NATSURL, log)
		if err != nil {
			return nil, closeFn, err
		}
		auditors = append(auditors, NewNATSAuditor(nc, cfg.NATSSubject, log))
		closeFn = func() {
			if err := nc.Drain(); err != nil {
				log.Err(err).Str("func", "NewAuditor").Msg("error draining NATS connection")
			}
		}
	}

	return auditors, closeFn, nil
}
