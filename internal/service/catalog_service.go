package service

import (
	"context"

	"github.com/autofuellanka/portal-service/internal/domain"
	"github.com/autofuellanka/portal-service/internal/repository"
	"github.com/autofuellanka/portal-service/pkg/util"
)

// CatalogService manages the bookable service offerings and locations.
type CatalogService struct {
	services repository.ServiceTypeRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(services repository.ServiceTypeRepository) *CatalogService {
	return &CatalogService{services: services}
}

// CreateServiceType adds an offering to the catalog.
func (s *CatalogService) CreateServiceType(ctx context.Context, st *domain.ServiceType) error {
	if st.Code == "" || st.Name == "" {
		return util.NewValidationError("code and name are required", nil)
	}
	if st.BasePrice.IsNegative() {
		return util.NewValidationError("base_price must not be negative", nil)
	}
	return s.services.Create(ctx, st)
}

// UpdateServiceType edits an offering.
func (s *CatalogService) UpdateServiceType(ctx context.Context, st *domain.ServiceType) error {
	if st.BasePrice.IsNegative() {
		return util.NewValidationError("base_price must not be negative", nil)
	}
	return s.services.Update(ctx, st)
}

// GetServiceType loads one offering.
func (s *CatalogService) GetServiceType(ctx context.Context, id int64) (*domain.ServiceType, error) {
	return s.services.GetByID(ctx, id)
}

// ListServiceTypes lists offerings; customers see active ones only.
func (s *CatalogService) ListServiceTypes(ctx context.Context, activeOnly bool) ([]domain.ServiceType, error) {
	return s.services.List(ctx, activeOnly)
}

// ListLocations lists bookable sites.
func (s *CatalogService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.services.ListLocations(ctx)
}
