package service

import (
	"github.com/MKhiriev/food-catalog/internal/audit"
	"github.com/MKhiriev/food-catalog/internal/config"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/store"
)

type Services struct {
	CatalogService CatalogService
	AccessService  AccessService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, auditor audit.AccessAuditor, logger *logger.Logger) (*Services, error) {
	if storages == nil || storages.ItemRepository == nil {
		return nil, ErrNoItemRepository
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	catalog := NewCatalogValidationService().Wrap(NewCatalogService(storages.ItemRepository, logger))

	return &Services{
		CatalogService: catalog,
		AccessService:  NewAccessService(cfg.App, auditor, logger),
		AppInfoService: appInfo,
	}, nil
}
