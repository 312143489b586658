// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/food-catalog/internal/category"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/metrics"
	"github.com/MKhiriev/food-catalog/internal/store"
	"github.com/MKhiriev/food-catalog/models"
)

// StoreProbe periodically pings the item store and publishes its health and
// the catalog size by kind as gauges.
type StoreProbe struct {
	items    store.ItemRepository
	metrics  *metrics.Metrics
	interval time.Duration

	logger *logger.Logger
}

func NewStoreProbe(items store.ItemRepository, m *metrics.Metrics, interval time.Duration, logger *logger.Logger) *StoreProbe {
	return &StoreProbe{
		items:    items,
		metrics:  m,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once immediately and then every interval until ctx is done.
func (p *StoreProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Str("func", "StoreProbe.Run").Dur("interval", p.interval).Msg("store probe started")

	for {
		p.probe(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info().Str("func", "StoreProbe.Run").Msg("store probe stopped")
			return
		case <-ticker.C:
		}
	}
}

func (p *StoreProbe) probe(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	if err := p.items.Ping(probeCtx); err != nil {
		p.metrics.StoreUp.Set(0)
		p.logger.Warn().Err(err).Str("func", "StoreProbe.probe").Msg("item store is unreachable")
		return
	}

	items, err := p.items.List(probeCtx)
	if err != nil {
		p.metrics.StoreUp.Set(0)
		p.logger.Warn().Err(err).Str("func", "StoreProbe.probe").Msg("error listing items")
		return
	}
	p.metrics.StoreUp.Set(1)

	byKind := map[models.Kind]int{
		models.KindFruit:     0,
		models.KindVegetable: 0,
		models.KindUnknown:   0,
	}
	for _, item := range items {
		byKind[category.Normalize(item.Category)]++
	}
	for kind, n := range byKind {
		p.metrics.CatalogItems.WithLabelValues(kind.String()).Set(float64(n))
	}
}
