package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/food-catalog/internal/validators"
	"github.com/MKhiriev/food-catalog/models"
)

// CatalogValidationService rejects malformed candidates before they reach
// the wrapped service. Unprivileged submissions are passed through
// untouched so the caller learns about the denial first.
type CatalogValidationService struct {
	inner     CatalogService
	validator validators.Validator
}

func NewCatalogValidationService() CatalogServiceWrapper {
	return &CatalogValidationService{
		validator: validators.NewItemValidator(),
	}
}

func (v *CatalogValidationService) Submit(ctx context.Context, session models.Session, candidate models.ItemCandidate) (models.ClassifiedItem, error) {
	if session.Privileged {
		if err := v.validator.Validate(ctx, candidate); err != nil {
			return models.ClassifiedItem{}, fmt.Errorf("error during item validation before saving: %w", err)
		}
	}

	return v.inner.Submit(ctx, session, candidate)
}

func (v *CatalogValidationService) ListAll(ctx context.Context) ([]models.ClassifiedItem, error) {
	return v.inner.ListAll(ctx)
}

func (v *CatalogValidationService) ListByCategory(ctx context.Context, sel models.Selector) ([]models.ClassifiedItem, error) {
	return v.inner.ListByCategory(ctx, sel)
}

func (v *CatalogValidationService) Counts(ctx context.Context) (models.Counts, error) {
	return v.inner.Counts(ctx)
}

func (v *CatalogValidationService) Get(ctx context.Context, id string) (models.ClassifiedItem, error) {
	return v.inner.Get(ctx, id)
}

func (v *CatalogValidationService) Browse(ctx context.Context, sel models.Selector) (models.CatalogView, error) {
	return v.inner.Browse(ctx, sel)
}

func (v *CatalogValidationService) Delete(ctx context.Context, session models.Session, id string) (bool, error) {
	return v.inner.Delete(ctx, session, id)
}

func (v *CatalogValidationService) Wrap(wrapped CatalogService) CatalogService {
	v.inner = wrapped
	return v
}
